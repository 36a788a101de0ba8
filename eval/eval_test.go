package eval_test

import (
	"testing"

	"github.com/katalvlaran/trajecta/eval"
	"github.com/stretchr/testify/require"
)

func TestUnanimousValidation_ShortCircuit(t *testing.T) {
	agg := eval.NewUnanimousValidation()
	agg.Record("c1", eval.PassedValidation)
	require.True(t, agg.Passed())

	agg.Record("c2", eval.FailedValidation)
	require.False(t, agg.Passed())

	// A constraint evaluated after the short-circuit is simply never
	// recorded; Get reports its absence rather than a stale value.
	_, ok := agg.Get("c3")
	require.False(t, ok)
}

func TestSubsetValidation_RequiresBothSizeAndConstraints(t *testing.T) {
	v := eval.SubsetValidation{SizeValid: true, ConstraintValidation: eval.PassedValidation}
	require.True(t, v.Passed())

	v.SizeValid = false
	require.False(t, v.Passed())

	v = eval.SubsetValidation{SizeValid: true, ConstraintValidation: eval.FailedValidation}
	require.False(t, v.Passed())

	v = eval.SubsetValidation{SizeValid: true}
	require.True(t, v.Passed())
}

func TestPenalizedEvaluation_SignConvention(t *testing.T) {
	base := eval.SimpleEvaluation(24)
	penalties := map[eval.ConstraintID]eval.PenalizingValidation{
		"forbidden": eval.NewPenalizingValidation(false, 5),
	}

	maximizing := eval.NewPenalizedEvaluation(base, penalties, false)
	require.Equal(t, 19.0, maximizing.Value())

	minimizing := eval.NewPenalizedEvaluation(base, penalties, true)
	require.Equal(t, 29.0, minimizing.Value())
}

func TestBetterAndDelta_RespectOrientation(t *testing.T) {
	a := eval.SimpleEvaluation(10)
	b := eval.SimpleEvaluation(5)

	require.True(t, eval.Better(a, b, false))
	require.False(t, eval.Better(a, b, true))

	require.Equal(t, 5.0, eval.Delta(a, b, false))
	require.Equal(t, -5.0, eval.Delta(a, b, true))
}
