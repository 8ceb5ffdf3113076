package decimal

import (
	"math"

	"github.com/sqlnumeric/decimal/internal/wideint"
)

const (
	numericSumWidth = 3 // 192 bits: tolerates billions of additions without overflow
	numericSqWidth  = 5 // 320 bits: holds Σx² for 128-bit values
)

// NumericSumAggregator accumulates SUM/AVG over a stream of Numeric values
// without intermediate rounding; only GetSum/GetAverage can fail, and only
// when the final result doesn't fit or the count is zero.
type NumericSumAggregator struct {
	sum [numericSumWidth]uint64
	neg bool
}

func (a *NumericSumAggregator) sumInt() wideint.Int {
	return wideint.IntFromUint(a.neg, wideint.UintFromLimbs(a.sum[:]))
}

func (a *NumericSumAggregator) setSumInt(v wideint.Int) {
	copy(a.sum[:], v.Abs().Limbs())
	a.neg = v.IsNeg()
}

// Add folds v into the running sum.
func (a *NumericSumAggregator) Add(v Numeric) {
	vi := wideint.IntFromUint(v.neg, v.mag()).Widen(numericSumWidth)
	sum, _ := a.sumInt().Add(vi) // accumulator width makes overflow unreachable in practice
	a.setSumInt(sum)
}

// Subtract removes v from the running sum (used to support sliding windows).
func (a *NumericSumAggregator) Subtract(v Numeric) {
	vi := wideint.IntFromUint(v.neg, v.mag()).Widen(numericSumWidth)
	sum, _ := a.sumInt().Sub(vi)
	a.setSumInt(sum)
}

// Merge combines another aggregator's state into a.
func (a *NumericSumAggregator) Merge(b *NumericSumAggregator) {
	sum, _ := a.sumInt().Add(b.sumInt())
	a.setSumInt(sum)
}

// GetSum returns the accumulated sum as a Numeric, or OutOfRange if it
// overflows NUMERIC's range.
func (a *NumericSumAggregator) GetSum() (Numeric, error) {
	sum := a.sumInt()
	mag, overflow := sum.Abs().Narrow(numericWidth)
	if overflow {
		return Numeric{}, newError(OutOfRange, "GetSum", "")
	}
	return numericCheckRange("GetSum", sum.IsNeg(), mag)
}

// GetAverage returns the accumulated sum divided by count, rounded
// half-away-from-zero, or DivisionByZero if count is zero.
func (a *NumericSumAggregator) GetAverage(count uint64) (Numeric, error) {
	if count == 0 {
		return Numeric{}, newError(DivisionByZero, "GetAverage", "")
	}
	sum := a.sumInt()
	countInt := wideint.IntFromUint(false, wideint.UintFromUint64(numericSumWidth, count))
	avg := sum.DivAndRoundAwayFromZero(countInt)
	mag, overflow := avg.Abs().Narrow(numericWidth)
	if overflow {
		return Numeric{}, newError(OutOfRange, "GetAverage", "")
	}
	return numericCheckRange("GetAverage", avg.IsNeg(), mag)
}

// SerializeBytes serializes the aggregator as a single flat field.
func (a *NumericSumAggregator) SerializeBytes() []byte {
	return a.sumInt().SerializeBytes()
}

// DeserializeNumericSumAggregator is the inverse of SerializeBytes.
func DeserializeNumericSumAggregator(b []byte) (*NumericSumAggregator, error) {
	v, ok := wideint.DeserializeIntBytes(numericSumWidth, b)
	if !ok {
		return nil, newError(InvalidArgument, "DeserializeNumericSumAggregator", "")
	}
	out := &NumericSumAggregator{}
	out.setSumInt(v)
	return out, nil
}

// NumericVarianceAggregator accumulates Σx and Σx² for VAR_POP/VAR_SAMP and
// STDDEV_POP/STDDEV_SAMP.
type NumericVarianceAggregator struct {
	sumX  [numericSumWidth]uint64
	negX  bool
	sumX2 [numericSqWidth]uint64 // always nonnegative (sum of squares)
}

func (a *NumericVarianceAggregator) sumXInt() wideint.Int {
	return wideint.IntFromUint(a.negX, wideint.UintFromLimbs(a.sumX[:]))
}

func (a *NumericVarianceAggregator) setSumX(v wideint.Int) {
	copy(a.sumX[:], v.Abs().Limbs())
	a.negX = v.IsNeg()
}

func (a *NumericVarianceAggregator) sumX2Uint() wideint.Uint {
	return wideint.UintFromLimbs(a.sumX2[:])
}

func (a *NumericVarianceAggregator) setSumX2(v wideint.Uint) { copy(a.sumX2[:], v.Limbs()) }

// Add folds v into Σx and Σx².
func (a *NumericVarianceAggregator) Add(v Numeric) {
	vi := wideint.IntFromUint(v.neg, v.mag()).Widen(numericSumWidth)
	sumX, _ := a.sumXInt().Add(vi)
	a.setSumX(sumX)

	vWide := v.mag().Widen(numericSumWidth)
	sq := vWide.ExtendAndMultiply(vWide) // width 6, always fits the 5-limb field for valid Numerics
	sq, _ = sq.Narrow(numericSqWidth)
	sumX2, _ := a.sumX2Uint().Add(sq)
	a.setSumX2(sumX2)
}

// Subtract removes v from Σx and Σx².
func (a *NumericVarianceAggregator) Subtract(v Numeric) {
	vi := wideint.IntFromUint(v.neg, v.mag()).Widen(numericSumWidth)
	sumX, _ := a.sumXInt().Sub(vi)
	a.setSumX(sumX)

	vWide := v.mag().Widen(numericSumWidth)
	sq := vWide.ExtendAndMultiply(vWide)
	sq, _ = sq.Narrow(numericSqWidth)
	sumX2, _ := a.sumX2Uint().Sub(sq)
	a.setSumX2(sumX2)
}

// Merge combines another aggregator's state into a.
func (a *NumericVarianceAggregator) Merge(b *NumericVarianceAggregator) {
	sumX, _ := a.sumXInt().Add(b.sumXInt())
	a.setSumX(sumX)
	sumX2, _ := a.sumX2Uint().Add(b.sumX2Uint())
	a.setSumX2(sumX2)
}

// varianceRatio computes count*Σx² - Σx*Σx (the numerator) and
// count*(count-sampleOffset) (the denominator, to be multiplied by the
// scale factor squared), both as float64, returning ok=false if count is
// below the required minimum (0 absent values per §4.7, not an error).
func (a *NumericVarianceAggregator) varianceRatio(count uint64, sampleOffset uint64) (float64, bool) {
	minCount := uint64(1) + sampleOffset
	if count < minCount {
		return 0, false
	}
	const w = numericSqWidth + 2
	countW := wideint.UintFromUint64(w, count)
	sumX2Wide := a.sumX2Uint().Widen(w)
	numA, _ := sumX2Wide.Mul(countW) // count*Σx², always nonnegative

	sumXWide := a.sumXInt().Widen(w)
	sumXSquaredMag := sumXWide.Abs().ExtendAndMultiply(sumXWide.Abs())
	sumXSquaredNarrow, _ := sumXSquaredMag.Narrow(w)

	numerator, _ := wideint.IntFromUint(false, numA).Sub(wideint.IntFromUint(false, sumXSquaredNarrow))

	denomCount := count * (count - sampleOffset)
	denom := float64(denomCount) * math.Pow(1e9, 2)

	return numerator.ToFloat64() / denom, true
}

// GetPopulationVariance returns VAR_POP, or ok=false if count==0.
func (a *NumericVarianceAggregator) GetPopulationVariance(count uint64) (float64, bool) {
	return a.varianceRatio(count, 0)
}

// GetSamplingVariance returns VAR_SAMP, or ok=false if count<2.
func (a *NumericVarianceAggregator) GetSamplingVariance(count uint64) (float64, bool) {
	return a.varianceRatio(count, 1)
}

// GetPopulationStdDev returns STDDEV_POP, or ok=false if count==0.
func (a *NumericVarianceAggregator) GetPopulationStdDev(count uint64) (float64, bool) {
	v, ok := a.GetPopulationVariance(count)
	if !ok {
		return 0, false
	}
	return math.Sqrt(math.Max(v, 0)), true
}

// GetSamplingStdDev returns STDDEV_SAMP, or ok=false if count<2.
func (a *NumericVarianceAggregator) GetSamplingStdDev(count uint64) (float64, bool) {
	v, ok := a.GetSamplingVariance(count)
	if !ok {
		return 0, false
	}
	return math.Sqrt(math.Max(v, 0)), true
}

// SerializeBytes serializes Σx then Σx², each length-prefixed with a single
// byte giving the field's byte length (0-127).
func (a *NumericVarianceAggregator) SerializeBytes() []byte {
	return appendLengthPrefixed(nil, a.sumXInt().SerializeBytes(), a.sumX2Uint().SerializeBytes())
}

// DeserializeNumericVarianceAggregator is the inverse of SerializeBytes.
func DeserializeNumericVarianceAggregator(b []byte) (*NumericVarianceAggregator, error) {
	fields, err := splitLengthPrefixed(b, 2)
	if err != nil {
		return nil, newError(InvalidArgument, "DeserializeNumericVarianceAggregator", err.Error())
	}
	sumX, ok := wideint.DeserializeIntBytes(numericSumWidth, fields[0])
	if !ok {
		return nil, newError(InvalidArgument, "DeserializeNumericVarianceAggregator", "sumX")
	}
	sumX2, ok := wideint.DeserializeUintBytes(numericSqWidth, fields[1])
	if !ok {
		return nil, newError(InvalidArgument, "DeserializeNumericVarianceAggregator", "sumX2")
	}
	out := &NumericVarianceAggregator{}
	out.setSumX(sumX)
	out.setSumX2(sumX2)
	return out, nil
}

// NumericCovarianceAggregator accumulates Σx, Σy, and Σxy for
// COVAR_POP/COVAR_SAMP.
type NumericCovarianceAggregator struct {
	sumX  [numericSumWidth]uint64
	negX  bool
	sumY  [numericSumWidth]uint64
	negY  bool
	sumXY [numericSqWidth]uint64
	negXY bool
}

func (a *NumericCovarianceAggregator) xInt() wideint.Int {
	return wideint.IntFromUint(a.negX, wideint.UintFromLimbs(a.sumX[:]))
}
func (a *NumericCovarianceAggregator) yInt() wideint.Int {
	return wideint.IntFromUint(a.negY, wideint.UintFromLimbs(a.sumY[:]))
}
func (a *NumericCovarianceAggregator) xyInt() wideint.Int {
	return wideint.IntFromUint(a.negXY, wideint.UintFromLimbs(a.sumXY[:]))
}
func (a *NumericCovarianceAggregator) setX(v wideint.Int) {
	copy(a.sumX[:], v.Abs().Limbs())
	a.negX = v.IsNeg()
}
func (a *NumericCovarianceAggregator) setY(v wideint.Int) {
	copy(a.sumY[:], v.Abs().Limbs())
	a.negY = v.IsNeg()
}
func (a *NumericCovarianceAggregator) setXY(v wideint.Int) {
	copy(a.sumXY[:], v.Abs().Limbs())
	a.negXY = v.IsNeg()
}

func (a *NumericCovarianceAggregator) addOrSub(x, y Numeric, subtract bool) {
	xi := wideint.IntFromUint(x.neg, x.mag()).Widen(numericSumWidth)
	yi := wideint.IntFromUint(y.neg, y.mag()).Widen(numericSumWidth)
	xWide := x.mag().Widen(numericSqWidth)
	yWide := y.mag().Widen(numericSqWidth)
	xyMag := xWide.ExtendAndMultiply(yWide)
	xyMagNarrow, _ := xyMag.Narrow(numericSqWidth)
	xyInt := wideint.IntFromUint(x.neg != y.neg, xyMagNarrow)

	var newX, newY, newXY wideint.Int
	if subtract {
		newX, _ = a.xInt().Sub(xi)
		newY, _ = a.yInt().Sub(yi)
		newXY, _ = a.xyInt().Sub(xyInt)
	} else {
		newX, _ = a.xInt().Add(xi)
		newY, _ = a.yInt().Add(yi)
		newXY, _ = a.xyInt().Add(xyInt)
	}
	a.setX(newX)
	a.setY(newY)
	a.setXY(newXY)
}

// Add folds the pair (x,y) into the running sums.
func (a *NumericCovarianceAggregator) Add(x, y Numeric) { a.addOrSub(x, y, false) }

// Subtract removes the pair (x,y) from the running sums.
func (a *NumericCovarianceAggregator) Subtract(x, y Numeric) { a.addOrSub(x, y, true) }

// Merge combines another aggregator's state into a.
func (a *NumericCovarianceAggregator) Merge(b *NumericCovarianceAggregator) {
	newX, _ := a.xInt().Add(b.xInt())
	newY, _ := a.yInt().Add(b.yInt())
	newXY, _ := a.xyInt().Add(b.xyInt())
	a.setX(newX)
	a.setY(newY)
	a.setXY(newXY)
}

func (a *NumericCovarianceAggregator) covarianceRatio(count uint64, sampleOffset uint64) (float64, bool) {
	minCount := uint64(1) + sampleOffset
	if count < minCount {
		return 0, false
	}
	const w = numericSqWidth + 2
	countW := wideint.UintFromUint64(w, count)
	xyWide := a.xyInt().Widen(w)
	numAMag, _ := xyWide.Abs().Mul(countW) // count*Σxy
	numA := wideint.IntFromUint(xyWide.IsNeg(), numAMag)

	xWide := a.xInt().Widen(w)
	yWide := a.yInt().Widen(w)
	xyProdMag := xWide.Abs().ExtendAndMultiply(yWide.Abs())
	xyProdNarrow, _ := xyProdMag.Narrow(w)
	xyProd := wideint.IntFromUint(xWide.IsNeg() != yWide.IsNeg(), xyProdNarrow)

	numerator, _ := numA.Sub(xyProd)

	denomCount := count * (count - sampleOffset)
	denom := float64(denomCount) * math.Pow(1e9, 2)
	return numerator.ToFloat64() / denom, true
}

// GetPopulationCovariance returns COVAR_POP, or ok=false if count==0.
func (a *NumericCovarianceAggregator) GetPopulationCovariance(count uint64) (float64, bool) {
	return a.covarianceRatio(count, 0)
}

// GetSamplingCovariance returns COVAR_SAMP, or ok=false if count<2.
func (a *NumericCovarianceAggregator) GetSamplingCovariance(count uint64) (float64, bool) {
	return a.covarianceRatio(count, 1)
}

// SerializeBytes serializes Σx, Σy, Σxy, each length-prefixed.
func (a *NumericCovarianceAggregator) SerializeBytes() []byte {
	return appendLengthPrefixed(nil, a.xInt().SerializeBytes(), a.yInt().SerializeBytes(), a.xyInt().SerializeBytes())
}

// DeserializeNumericCovarianceAggregator is the inverse of SerializeBytes.
func DeserializeNumericCovarianceAggregator(b []byte) (*NumericCovarianceAggregator, error) {
	fields, err := splitLengthPrefixed(b, 3)
	if err != nil {
		return nil, newError(InvalidArgument, "DeserializeNumericCovarianceAggregator", err.Error())
	}
	x, ok := wideint.DeserializeIntBytes(numericSumWidth, fields[0])
	if !ok {
		return nil, newError(InvalidArgument, "DeserializeNumericCovarianceAggregator", "x")
	}
	y, ok := wideint.DeserializeIntBytes(numericSumWidth, fields[1])
	if !ok {
		return nil, newError(InvalidArgument, "DeserializeNumericCovarianceAggregator", "y")
	}
	xy, ok := wideint.DeserializeIntBytes(numericSqWidth, fields[2])
	if !ok {
		return nil, newError(InvalidArgument, "DeserializeNumericCovarianceAggregator", "xy")
	}
	out := &NumericCovarianceAggregator{}
	out.setX(x)
	out.setY(y)
	out.setXY(xy)
	return out, nil
}

// NumericCorrelationAggregator accumulates the state needed for CORR: a
// covariance aggregator plus Σx² and Σy².
type NumericCorrelationAggregator struct {
	cov  NumericCovarianceAggregator
	varX NumericVarianceAggregator
	varY NumericVarianceAggregator
}

// Add folds the pair (x,y) into the running state.
func (a *NumericCorrelationAggregator) Add(x, y Numeric) {
	a.cov.Add(x, y)
	a.varX.Add(x)
	a.varY.Add(y)
}

// Subtract removes the pair (x,y) from the running state.
func (a *NumericCorrelationAggregator) Subtract(x, y Numeric) {
	a.cov.Subtract(x, y)
	a.varX.Subtract(x)
	a.varY.Subtract(y)
}

// Merge combines another aggregator's state into a.
func (a *NumericCorrelationAggregator) Merge(b *NumericCorrelationAggregator) {
	a.cov.Merge(&b.cov)
	a.varX.Merge(&b.varX)
	a.varY.Merge(&b.varY)
}

// GetCorrelation returns Pearson's correlation coefficient, or ok=false if
// count<2.
func (a *NumericCorrelationAggregator) GetCorrelation(count uint64) (float64, bool) {
	covXY, ok := a.cov.GetSamplingCovariance(count)
	if !ok {
		return 0, false
	}
	varX, _ := a.varX.GetSamplingVariance(count)
	varY, _ := a.varY.GetSamplingVariance(count)
	denom := math.Sqrt(varX * varY)
	if denom == 0 {
		return 0, false
	}
	return covXY / denom, true
}

// SerializeBytes serializes the covariance state followed by Σx² and Σy².
func (a *NumericCorrelationAggregator) SerializeBytes() []byte {
	return appendLengthPrefixed(nil, a.cov.SerializeBytes(), a.varX.sumX2Uint().SerializeBytes(), a.varY.sumX2Uint().SerializeBytes())
}

// DeserializeNumericCorrelationAggregator is the inverse of SerializeBytes.
func DeserializeNumericCorrelationAggregator(b []byte) (*NumericCorrelationAggregator, error) {
	fields, err := splitLengthPrefixed(b, 3)
	if err != nil {
		return nil, newError(InvalidArgument, "DeserializeNumericCorrelationAggregator", err.Error())
	}
	cov, err := DeserializeNumericCovarianceAggregator(fields[0])
	if err != nil {
		return nil, err
	}
	sqX, ok := wideint.DeserializeUintBytes(numericSqWidth, fields[1])
	if !ok {
		return nil, newError(InvalidArgument, "DeserializeNumericCorrelationAggregator", "sumX2")
	}
	sqY, ok := wideint.DeserializeUintBytes(numericSqWidth, fields[2])
	if !ok {
		return nil, newError(InvalidArgument, "DeserializeNumericCorrelationAggregator", "sumY2")
	}
	out := &NumericCorrelationAggregator{cov: *cov}
	out.varX.setSumX(cov.xInt())
	out.varX.setSumX2(sqX)
	out.varY.setSumX(cov.yInt())
	out.varY.setSumX2(sqY)
	return out, nil
}
