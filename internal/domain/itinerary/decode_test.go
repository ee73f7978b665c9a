package itinerary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestUnmarshalCoercesNumbers(t *testing.T) {
	cases := map[string]struct {
		body   string
		days   int
		budget *int
	}{
		"plain numbers":    {`{"days":2,"budget":100000}`, 2, intPtr(100000)},
		"numeric strings":  {`{"days":"2","budget":" 100000 "}`, 2, intPtr(100000)},
		"fraction":         {`{"days":2.5,"budget":"99.9"}`, 2, intPtr(99)},
		"garbage":          {`{"days":"abc","budget":"много"}`, 0, nil},
		"wrong json types": {`{"days":true,"budget":[1]}`, 0, nil},
		"nulls":            {`{"days":null,"budget":null}`, 0, nil},
		"overflow":         {`{"days":1e300}`, 0, nil},
		"absent":           {`{}`, 0, nil},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var req Request
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			require.Equal(t, tc.days, req.Days)
			require.Equal(t, tc.budget, req.Budget)
		})
	}
}

func TestRequestUnmarshalKeepsTextFields(t *testing.T) {
	var req Request
	require.NoError(t, json.Unmarshal([]byte(`{"city":"Сиань","mode":"cheapest","interests":["еда"]}`), &req))
	require.Equal(t, "Сиань", req.City)
	require.Equal(t, ModeCheapest, req.Mode)
	require.Equal(t, []string{"еда"}, req.Interests)

	require.NoError(t, json.Unmarshal([]byte(`{"city":42,"mode":7}`), &req))
	require.Empty(t, req.City)
	require.Empty(t, req.Mode)
}

func TestInvalidDaysFallBackToDefault(t *testing.T) {
	var req Request
	require.NoError(t, json.Unmarshal([]byte(`{"days":"abc"}`), &req))
	it := Generate(req)
	require.Equal(t, 3, it.Days)
	require.Len(t, it.DailyPlans, 3)
}

func TestRequestUnmarshalRejectsMalformedJSON(t *testing.T) {
	var req Request
	require.Error(t, json.Unmarshal([]byte(`{"days":`), &req))
}
