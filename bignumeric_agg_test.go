package decimal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBigNumericSumAggregator(t *testing.T) {
	var agg BigNumericSumAggregator
	for _, s := range []string{"1", "2", "3", "4"} {
		agg.Add(MustParseBigNumeric(s))
	}
	sum, err := agg.GetSum()
	require.NoError(t, err)
	require.Equal(t, "10", sum.String())

	avg, err := agg.GetAverage(4)
	require.NoError(t, err)
	require.Equal(t, "2.5", avg.String())
}

func TestBigNumericSumAggregator_SerializeRoundTrip(t *testing.T) {
	var agg BigNumericSumAggregator
	agg.Add(MustParseBigNumeric("-42.5"))
	agg.Add(MustParseBigNumeric("100"))

	got, err := DeserializeBigNumericSumAggregator(agg.SerializeBytes())
	require.NoError(t, err)
	sum1, _ := agg.GetSum()
	sum2, _ := got.GetSum()
	require.True(t, sum1.Equal(sum2))
}

func TestBigNumericVarianceAggregator(t *testing.T) {
	var agg BigNumericVarianceAggregator
	for _, s := range []string{"2", "4", "4", "4", "5", "5", "7", "9"} {
		agg.Add(MustParseBigNumeric(s))
	}
	popVar, ok := agg.GetPopulationVariance(8)
	require.True(t, ok)
	require.InDelta(t, 4.0, popVar, 1e-6)
}

func TestBigNumericCovarianceAggregator(t *testing.T) {
	var agg BigNumericCovarianceAggregator
	xs := []string{"1", "2", "3", "4", "5"}
	ys := []string{"2", "4", "6", "8", "10"}
	for i := range xs {
		agg.Add(MustParseBigNumeric(xs[i]), MustParseBigNumeric(ys[i]))
	}
	cov, ok := agg.GetPopulationCovariance(5)
	require.True(t, ok)
	require.InDelta(t, 4.0, cov, 1e-6)
}

func TestBigNumericCorrelationAggregator(t *testing.T) {
	var agg BigNumericCorrelationAggregator
	xs := []string{"1", "2", "3", "4", "5"}
	ys := []string{"2", "4", "6", "8", "10"}
	for i := range xs {
		agg.Add(MustParseBigNumeric(xs[i]), MustParseBigNumeric(ys[i]))
	}
	corr, ok := agg.GetCorrelation(5)
	require.True(t, ok)
	require.InDelta(t, 1.0, corr, 1e-6)
}

func TestBigNumericCorrelationAggregator_SerializeRoundTrip(t *testing.T) {
	var agg BigNumericCorrelationAggregator
	agg.Add(MustParseBigNumeric("1"), MustParseBigNumeric("5"))
	agg.Add(MustParseBigNumeric("2"), MustParseBigNumeric("3"))
	agg.Add(MustParseBigNumeric("3"), MustParseBigNumeric("8"))

	got, err := DeserializeBigNumericCorrelationAggregator(agg.SerializeBytes())
	require.NoError(t, err)
	want, _ := agg.GetCorrelation(3)
	have, _ := got.GetCorrelation(3)
	require.InDelta(t, want, have, 1e-9)
}
