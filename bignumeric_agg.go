package decimal

import (
	"math"

	"github.com/sqlnumeric/decimal/internal/wideint"
)

const (
	bigNumericSumWidth = 5  // 320 bits: tolerates billions of additions without overflow
	bigNumericSqWidth  = 10 // 640 bits: holds Σx² of 256-bit values with 128 bits of headroom
)

// BigNumericSumAggregator accumulates SUM/AVG over a stream of BigNumeric
// values without intermediate rounding.
type BigNumericSumAggregator struct {
	sum [bigNumericSumWidth]uint64
	neg bool
}

func (a *BigNumericSumAggregator) sumInt() wideint.Int {
	return wideint.IntFromUint(a.neg, wideint.UintFromLimbs(a.sum[:]))
}

func (a *BigNumericSumAggregator) setSumInt(v wideint.Int) {
	copy(a.sum[:], v.Abs().Limbs())
	a.neg = v.IsNeg()
}

// Add folds v into the running sum.
func (a *BigNumericSumAggregator) Add(v BigNumeric) {
	vi := wideint.IntFromUint(v.neg, v.mag()).Widen(bigNumericSumWidth)
	sum, _ := a.sumInt().Add(vi)
	a.setSumInt(sum)
}

// Subtract removes v from the running sum.
func (a *BigNumericSumAggregator) Subtract(v BigNumeric) {
	vi := wideint.IntFromUint(v.neg, v.mag()).Widen(bigNumericSumWidth)
	sum, _ := a.sumInt().Sub(vi)
	a.setSumInt(sum)
}

// Merge combines another aggregator's state into a.
func (a *BigNumericSumAggregator) Merge(b *BigNumericSumAggregator) {
	sum, _ := a.sumInt().Add(b.sumInt())
	a.setSumInt(sum)
}

// GetSum returns the accumulated sum as a BigNumeric, or OutOfRange if it
// overflows BIGNUMERIC's range.
func (a *BigNumericSumAggregator) GetSum() (BigNumeric, error) {
	sum := a.sumInt()
	mag, overflow := sum.Abs().Narrow(bigNumericWidth)
	if overflow {
		return BigNumeric{}, newError(OutOfRange, "GetSum", "")
	}
	return bigNumericCheckRange("GetSum", sum.IsNeg(), mag)
}

// GetAverage returns the accumulated sum divided by count, rounded
// half-away-from-zero, or DivisionByZero if count is zero.
func (a *BigNumericSumAggregator) GetAverage(count uint64) (BigNumeric, error) {
	if count == 0 {
		return BigNumeric{}, newError(DivisionByZero, "GetAverage", "")
	}
	sum := a.sumInt()
	countInt := wideint.IntFromUint(false, wideint.UintFromUint64(bigNumericSumWidth, count))
	avg := sum.DivAndRoundAwayFromZero(countInt)
	mag, overflow := avg.Abs().Narrow(bigNumericWidth)
	if overflow {
		return BigNumeric{}, newError(OutOfRange, "GetAverage", "")
	}
	return bigNumericCheckRange("GetAverage", avg.IsNeg(), mag)
}

// SerializeBytes serializes the aggregator as a single flat field.
func (a *BigNumericSumAggregator) SerializeBytes() []byte {
	return a.sumInt().SerializeBytes()
}

// DeserializeBigNumericSumAggregator is the inverse of SerializeBytes.
func DeserializeBigNumericSumAggregator(b []byte) (*BigNumericSumAggregator, error) {
	v, ok := wideint.DeserializeIntBytes(bigNumericSumWidth, b)
	if !ok {
		return nil, newError(InvalidArgument, "DeserializeBigNumericSumAggregator", "")
	}
	out := &BigNumericSumAggregator{}
	out.setSumInt(v)
	return out, nil
}

// BigNumericVarianceAggregator accumulates Σx and Σx² for
// VAR_POP/VAR_SAMP and STDDEV_POP/STDDEV_SAMP over BigNumeric values.
type BigNumericVarianceAggregator struct {
	sumX  [bigNumericSumWidth]uint64
	negX  bool
	sumX2 [bigNumericSqWidth]uint64
}

func (a *BigNumericVarianceAggregator) sumXInt() wideint.Int {
	return wideint.IntFromUint(a.negX, wideint.UintFromLimbs(a.sumX[:]))
}

func (a *BigNumericVarianceAggregator) setSumX(v wideint.Int) {
	copy(a.sumX[:], v.Abs().Limbs())
	a.negX = v.IsNeg()
}

func (a *BigNumericVarianceAggregator) sumX2Uint() wideint.Uint {
	return wideint.UintFromLimbs(a.sumX2[:])
}

func (a *BigNumericVarianceAggregator) setSumX2(v wideint.Uint) { copy(a.sumX2[:], v.Limbs()) }

// Add folds v into Σx and Σx².
func (a *BigNumericVarianceAggregator) Add(v BigNumeric) {
	vi := wideint.IntFromUint(v.neg, v.mag()).Widen(bigNumericSumWidth)
	sumX, _ := a.sumXInt().Add(vi)
	a.setSumX(sumX)

	vWide := v.mag().Widen(bigNumericSumWidth)
	sq := vWide.ExtendAndMultiply(vWide)
	sq, _ = sq.Narrow(bigNumericSqWidth)
	sumX2, _ := a.sumX2Uint().Add(sq)
	a.setSumX2(sumX2)
}

// Subtract removes v from Σx and Σx².
func (a *BigNumericVarianceAggregator) Subtract(v BigNumeric) {
	vi := wideint.IntFromUint(v.neg, v.mag()).Widen(bigNumericSumWidth)
	sumX, _ := a.sumXInt().Sub(vi)
	a.setSumX(sumX)

	vWide := v.mag().Widen(bigNumericSumWidth)
	sq := vWide.ExtendAndMultiply(vWide)
	sq, _ = sq.Narrow(bigNumericSqWidth)
	sumX2, _ := a.sumX2Uint().Sub(sq)
	a.setSumX2(sumX2)
}

// Merge combines another aggregator's state into a.
func (a *BigNumericVarianceAggregator) Merge(b *BigNumericVarianceAggregator) {
	sumX, _ := a.sumXInt().Add(b.sumXInt())
	a.setSumX(sumX)
	sumX2, _ := a.sumX2Uint().Add(b.sumX2Uint())
	a.setSumX2(sumX2)
}

func (a *BigNumericVarianceAggregator) varianceRatio(count uint64, sampleOffset uint64) (float64, bool) {
	minCount := uint64(1) + sampleOffset
	if count < minCount {
		return 0, false
	}
	const w = bigNumericSqWidth + 2
	countW := wideint.UintFromUint64(w, count)
	sumX2Wide := a.sumX2Uint().Widen(w)
	numA, _ := sumX2Wide.Mul(countW) // count*Σx², always nonnegative

	sumXWide := a.sumXInt().Widen(w)
	sumXSquaredMag := sumXWide.Abs().ExtendAndMultiply(sumXWide.Abs())
	sumXSquaredNarrow, _ := sumXSquaredMag.Narrow(w)

	numerator, _ := wideint.IntFromUint(false, numA).Sub(wideint.IntFromUint(false, sumXSquaredNarrow))

	denomCount := count * (count - sampleOffset)
	denom := float64(denomCount) * math.Pow(1e38, 2)

	return numerator.ToFloat64() / denom, true
}

// GetPopulationVariance returns VAR_POP, or ok=false if count==0.
func (a *BigNumericVarianceAggregator) GetPopulationVariance(count uint64) (float64, bool) {
	return a.varianceRatio(count, 0)
}

// GetSamplingVariance returns VAR_SAMP, or ok=false if count<2.
func (a *BigNumericVarianceAggregator) GetSamplingVariance(count uint64) (float64, bool) {
	return a.varianceRatio(count, 1)
}

// GetPopulationStdDev returns STDDEV_POP, or ok=false if count==0.
func (a *BigNumericVarianceAggregator) GetPopulationStdDev(count uint64) (float64, bool) {
	v, ok := a.GetPopulationVariance(count)
	if !ok {
		return 0, false
	}
	return math.Sqrt(math.Max(v, 0)), true
}

// GetSamplingStdDev returns STDDEV_SAMP, or ok=false if count<2.
func (a *BigNumericVarianceAggregator) GetSamplingStdDev(count uint64) (float64, bool) {
	v, ok := a.GetSamplingVariance(count)
	if !ok {
		return 0, false
	}
	return math.Sqrt(math.Max(v, 0)), true
}

// SerializeBytes serializes Σx then Σx², each length-prefixed.
func (a *BigNumericVarianceAggregator) SerializeBytes() []byte {
	return appendLengthPrefixed(nil, a.sumXInt().SerializeBytes(), a.sumX2Uint().SerializeBytes())
}

// DeserializeBigNumericVarianceAggregator is the inverse of SerializeBytes.
func DeserializeBigNumericVarianceAggregator(b []byte) (*BigNumericVarianceAggregator, error) {
	fields, err := splitLengthPrefixed(b, 2)
	if err != nil {
		return nil, newError(InvalidArgument, "DeserializeBigNumericVarianceAggregator", err.Error())
	}
	sumX, ok := wideint.DeserializeIntBytes(bigNumericSumWidth, fields[0])
	if !ok {
		return nil, newError(InvalidArgument, "DeserializeBigNumericVarianceAggregator", "sumX")
	}
	sumX2, ok := wideint.DeserializeUintBytes(bigNumericSqWidth, fields[1])
	if !ok {
		return nil, newError(InvalidArgument, "DeserializeBigNumericVarianceAggregator", "sumX2")
	}
	out := &BigNumericVarianceAggregator{}
	out.setSumX(sumX)
	out.setSumX2(sumX2)
	return out, nil
}

// BigNumericCovarianceAggregator accumulates Σx, Σy, and Σxy for
// COVAR_POP/COVAR_SAMP over BigNumeric values.
type BigNumericCovarianceAggregator struct {
	sumX  [bigNumericSumWidth]uint64
	negX  bool
	sumY  [bigNumericSumWidth]uint64
	negY  bool
	sumXY [bigNumericSqWidth]uint64
	negXY bool
}

func (a *BigNumericCovarianceAggregator) xInt() wideint.Int {
	return wideint.IntFromUint(a.negX, wideint.UintFromLimbs(a.sumX[:]))
}
func (a *BigNumericCovarianceAggregator) yInt() wideint.Int {
	return wideint.IntFromUint(a.negY, wideint.UintFromLimbs(a.sumY[:]))
}
func (a *BigNumericCovarianceAggregator) xyInt() wideint.Int {
	return wideint.IntFromUint(a.negXY, wideint.UintFromLimbs(a.sumXY[:]))
}
func (a *BigNumericCovarianceAggregator) setX(v wideint.Int) {
	copy(a.sumX[:], v.Abs().Limbs())
	a.negX = v.IsNeg()
}
func (a *BigNumericCovarianceAggregator) setY(v wideint.Int) {
	copy(a.sumY[:], v.Abs().Limbs())
	a.negY = v.IsNeg()
}
func (a *BigNumericCovarianceAggregator) setXY(v wideint.Int) {
	copy(a.sumXY[:], v.Abs().Limbs())
	a.negXY = v.IsNeg()
}

func (a *BigNumericCovarianceAggregator) addOrSub(x, y BigNumeric, subtract bool) {
	xi := wideint.IntFromUint(x.neg, x.mag()).Widen(bigNumericSumWidth)
	yi := wideint.IntFromUint(y.neg, y.mag()).Widen(bigNumericSumWidth)
	xWide := x.mag().Widen(bigNumericSqWidth)
	yWide := y.mag().Widen(bigNumericSqWidth)
	xyMag := xWide.ExtendAndMultiply(yWide)
	xyMagNarrow, _ := xyMag.Narrow(bigNumericSqWidth)
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
func (a *BigNumericCovarianceAggregator) Add(x, y BigNumeric) { a.addOrSub(x, y, false) }

// Subtract removes the pair (x,y) from the running sums.
func (a *BigNumericCovarianceAggregator) Subtract(x, y BigNumeric) { a.addOrSub(x, y, true) }

// Merge combines another aggregator's state into a.
func (a *BigNumericCovarianceAggregator) Merge(b *BigNumericCovarianceAggregator) {
	newX, _ := a.xInt().Add(b.xInt())
	newY, _ := a.yInt().Add(b.yInt())
	newXY, _ := a.xyInt().Add(b.xyInt())
	a.setX(newX)
	a.setY(newY)
	a.setXY(newXY)
}

func (a *BigNumericCovarianceAggregator) covarianceRatio(count uint64, sampleOffset uint64) (float64, bool) {
	minCount := uint64(1) + sampleOffset
	if count < minCount {
		return 0, false
	}
	const w = bigNumericSqWidth + 2
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
	denom := float64(denomCount) * math.Pow(1e38, 2)
	return numerator.ToFloat64() / denom, true
}

// GetPopulationCovariance returns COVAR_POP, or ok=false if count==0.
func (a *BigNumericCovarianceAggregator) GetPopulationCovariance(count uint64) (float64, bool) {
	return a.covarianceRatio(count, 0)
}

// GetSamplingCovariance returns COVAR_SAMP, or ok=false if count<2.
func (a *BigNumericCovarianceAggregator) GetSamplingCovariance(count uint64) (float64, bool) {
	return a.covarianceRatio(count, 1)
}

// SerializeBytes serializes Σx, Σy, Σxy, each length-prefixed.
func (a *BigNumericCovarianceAggregator) SerializeBytes() []byte {
	return appendLengthPrefixed(nil, a.xInt().SerializeBytes(), a.yInt().SerializeBytes(), a.xyInt().SerializeBytes())
}

// DeserializeBigNumericCovarianceAggregator is the inverse of SerializeBytes.
func DeserializeBigNumericCovarianceAggregator(b []byte) (*BigNumericCovarianceAggregator, error) {
	fields, err := splitLengthPrefixed(b, 3)
	if err != nil {
		return nil, newError(InvalidArgument, "DeserializeBigNumericCovarianceAggregator", err.Error())
	}
	x, ok := wideint.DeserializeIntBytes(bigNumericSumWidth, fields[0])
	if !ok {
		return nil, newError(InvalidArgument, "DeserializeBigNumericCovarianceAggregator", "x")
	}
	y, ok := wideint.DeserializeIntBytes(bigNumericSumWidth, fields[1])
	if !ok {
		return nil, newError(InvalidArgument, "DeserializeBigNumericCovarianceAggregator", "y")
	}
	xy, ok := wideint.DeserializeIntBytes(bigNumericSqWidth, fields[2])
	if !ok {
		return nil, newError(InvalidArgument, "DeserializeBigNumericCovarianceAggregator", "xy")
	}
	out := &BigNumericCovarianceAggregator{}
	out.setX(x)
	out.setY(y)
	out.setXY(xy)
	return out, nil
}

// BigNumericCorrelationAggregator accumulates the state needed for CORR
// over BigNumeric values: a covariance aggregator plus Σx² and Σy².
type BigNumericCorrelationAggregator struct {
	cov  BigNumericCovarianceAggregator
	varX BigNumericVarianceAggregator
	varY BigNumericVarianceAggregator
}

// Add folds the pair (x,y) into the running state.
func (a *BigNumericCorrelationAggregator) Add(x, y BigNumeric) {
	a.cov.Add(x, y)
	a.varX.Add(x)
	a.varY.Add(y)
}

// Subtract removes the pair (x,y) from the running state.
func (a *BigNumericCorrelationAggregator) Subtract(x, y BigNumeric) {
	a.cov.Subtract(x, y)
	a.varX.Subtract(x)
	a.varY.Subtract(y)
}

// Merge combines another aggregator's state into a.
func (a *BigNumericCorrelationAggregator) Merge(b *BigNumericCorrelationAggregator) {
	a.cov.Merge(&b.cov)
	a.varX.Merge(&b.varX)
	a.varY.Merge(&b.varY)
}

// GetCorrelation returns Pearson's correlation coefficient, or ok=false if
// count<2.
func (a *BigNumericCorrelationAggregator) GetCorrelation(count uint64) (float64, bool) {
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
func (a *BigNumericCorrelationAggregator) SerializeBytes() []byte {
	return appendLengthPrefixed(nil, a.cov.SerializeBytes(), a.varX.sumX2Uint().SerializeBytes(), a.varY.sumX2Uint().SerializeBytes())
}

// DeserializeBigNumericCorrelationAggregator is the inverse of SerializeBytes.
func DeserializeBigNumericCorrelationAggregator(b []byte) (*BigNumericCorrelationAggregator, error) {
	fields, err := splitLengthPrefixed(b, 3)
	if err != nil {
		return nil, newError(InvalidArgument, "DeserializeBigNumericCorrelationAggregator", err.Error())
	}
	cov, err := DeserializeBigNumericCovarianceAggregator(fields[0])
	if err != nil {
		return nil, err
	}
	sqX, ok := wideint.DeserializeUintBytes(bigNumericSqWidth, fields[1])
	if !ok {
		return nil, newError(InvalidArgument, "DeserializeBigNumericCorrelationAggregator", "sumX2")
	}
	sqY, ok := wideint.DeserializeUintBytes(bigNumericSqWidth, fields[2])
	if !ok {
		return nil, newError(InvalidArgument, "DeserializeBigNumericCorrelationAggregator", "sumY2")
	}
	out := &BigNumericCorrelationAggregator{cov: *cov}
	out.varX.setSumX(cov.xInt())
	out.varX.setSumX2(sqX)
	out.varY.setSumX(cov.yInt())
	out.varY.setSumX2(sqY)
	return out, nil
}
