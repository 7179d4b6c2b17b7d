package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openshelf/library-service/internal/model"
)

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	var d model.Date
	require.NoError(t, json.Unmarshal([]byte(`"1965-08-01"`), &d))
	require.Equal(t, time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC), d.Time)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"1965-08-01"`, string(b))
}

func TestDate_UnmarshalRejectsGarbage(t *testing.T) {
	t.Parallel()

	var d model.Date
	require.Error(t, json.Unmarshal([]byte(`"01.08.1965"`), &d))
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	require.True(t, d.IsZero())
}
