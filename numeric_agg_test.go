package decimal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumericSumAggregator(t *testing.T) {
	var agg NumericSumAggregator
	for _, s := range []string{"1", "2", "3", "4"} {
		agg.Add(MustParseNumeric(s))
	}
	sum, err := agg.GetSum()
	require.NoError(t, err)
	require.Equal(t, "10", sum.String())

	avg, err := agg.GetAverage(4)
	require.NoError(t, err)
	require.Equal(t, "2.5", avg.String())
}

func TestNumericSumAggregator_SubtractAndMerge(t *testing.T) {
	var a, b NumericSumAggregator
	a.Add(MustParseNumeric("10"))
	a.Add(MustParseNumeric("5"))
	a.Subtract(MustParseNumeric("3"))

	b.Add(MustParseNumeric("100"))

	a.Merge(&b)
	sum, err := a.GetSum()
	require.NoError(t, err)
	require.Equal(t, "112", sum.String())
}

func TestNumericSumAggregator_AverageByZeroCount(t *testing.T) {
	var agg NumericSumAggregator
	_, err := agg.GetAverage(0)
	require.True(t, errorIsKind(err, DivisionByZero))
}

func TestNumericSumAggregator_SerializeRoundTrip(t *testing.T) {
	var agg NumericSumAggregator
	agg.Add(MustParseNumeric("-42.5"))
	agg.Add(MustParseNumeric("100"))

	got, err := DeserializeNumericSumAggregator(agg.SerializeBytes())
	require.NoError(t, err)
	sum1, _ := agg.GetSum()
	sum2, _ := got.GetSum()
	require.True(t, sum1.Equal(sum2))
}

func TestNumericVarianceAggregator(t *testing.T) {
	var agg NumericVarianceAggregator
	for _, s := range []string{"2", "4", "4", "4", "5", "5", "7", "9"} {
		agg.Add(MustParseNumeric(s))
	}
	popVar, ok := agg.GetPopulationVariance(8)
	require.True(t, ok)
	require.InDelta(t, 4.0, popVar, 1e-6)

	popStd, ok := agg.GetPopulationStdDev(8)
	require.True(t, ok)
	require.InDelta(t, 2.0, popStd, 1e-6)
}

func TestNumericVarianceAggregator_InsufficientCount(t *testing.T) {
	var agg NumericVarianceAggregator
	agg.Add(MustParseNumeric("1"))
	_, ok := agg.GetSamplingVariance(1)
	require.False(t, ok)
	_, ok = agg.GetPopulationVariance(0)
	require.False(t, ok)
}

func TestNumericVarianceAggregator_SerializeRoundTrip(t *testing.T) {
	var agg NumericVarianceAggregator
	agg.Add(MustParseNumeric("3"))
	agg.Add(MustParseNumeric("-7.5"))

	got, err := DeserializeNumericVarianceAggregator(agg.SerializeBytes())
	require.NoError(t, err)
	want, _ := agg.GetPopulationVariance(2)
	have, _ := got.GetPopulationVariance(2)
	require.InDelta(t, want, have, 1e-12)
}

func TestNumericCovarianceAggregator(t *testing.T) {
	var agg NumericCovarianceAggregator
	xs := []string{"1", "2", "3", "4", "5"}
	ys := []string{"2", "4", "6", "8", "10"}
	for i := range xs {
		agg.Add(MustParseNumeric(xs[i]), MustParseNumeric(ys[i]))
	}
	cov, ok := agg.GetPopulationCovariance(5)
	require.True(t, ok)
	require.InDelta(t, 4.0, cov, 1e-6)
}

func TestNumericCovarianceAggregator_SubtractAndMerge(t *testing.T) {
	var a, b NumericCovarianceAggregator
	a.Add(MustParseNumeric("1"), MustParseNumeric("2"))
	a.Add(MustParseNumeric("3"), MustParseNumeric("6"))
	a.Subtract(MustParseNumeric("3"), MustParseNumeric("6"))

	b.Add(MustParseNumeric("1"), MustParseNumeric("2"))
	a.Merge(&b)

	cov, ok := a.GetPopulationCovariance(2)
	require.True(t, ok)
	require.InDelta(t, 0.0, cov, 1e-6)
}

func TestNumericCorrelationAggregator(t *testing.T) {
	var agg NumericCorrelationAggregator
	xs := []string{"1", "2", "3", "4", "5"}
	ys := []string{"2", "4", "6", "8", "10"}
	for i := range xs {
		agg.Add(MustParseNumeric(xs[i]), MustParseNumeric(ys[i]))
	}
	corr, ok := agg.GetCorrelation(5)
	require.True(t, ok)
	require.InDelta(t, 1.0, corr, 1e-6)
}

func TestNumericCorrelationAggregator_SerializeRoundTrip(t *testing.T) {
	var agg NumericCorrelationAggregator
	agg.Add(MustParseNumeric("1"), MustParseNumeric("5"))
	agg.Add(MustParseNumeric("2"), MustParseNumeric("3"))
	agg.Add(MustParseNumeric("3"), MustParseNumeric("8"))

	got, err := DeserializeNumericCorrelationAggregator(agg.SerializeBytes())
	require.NoError(t, err)
	want, _ := agg.GetCorrelation(3)
	have, _ := got.GetCorrelation(3)
	require.InDelta(t, want, have, 1e-9)
}
