package dbmodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAverageRating(t *testing.T) {
	t.Run("без оценок возвращается N/A", func(t *testing.T) {
		require.Equal(t, "N/A", AverageRating(nil))
		require.Equal(t, "N/A", AverageRating([]Feedback{}))
	})

	t.Run("среднее по оценкам", func(t *testing.T) {
		list := []Feedback{
			{Rating: 4},
			{Rating: 5},
		}
		require.Equal(t, "4.50", AverageRating(list))
	})

	t.Run("одна оценка", func(t *testing.T) {
		require.Equal(t, "3.00", AverageRating([]Feedback{{Rating: 3}}))
	})
}

func TestFeedbackValidate(t *testing.T) {
	t.Run("оценка в диапазоне", func(t *testing.T) {
		for rating := 1; rating <= 5; rating++ {
			rec := Feedback{ResultID: "id", Rating: rating}
			require.Nil(t, rec.Validate())
		}
	})

	t.Run("оценка вне диапазона отклоняется", func(t *testing.T) {
		for _, rating := range []int{0, -1, 6, 100} {
			rec := Feedback{ResultID: "id", Rating: rating}
			require.NotNil(t, rec.Validate())
		}
	})

	t.Run("без результата отклоняется", func(t *testing.T) {
		rec := Feedback{Rating: 3}
		require.NotNil(t, rec.Validate())
	})
}
