package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestLookupsTotal(t *testing.T) {
	r := require.New(t)

	counter := LookupsTotal.WithLabelValues("Resolve", ResultHit)
	before := testutil.ToFloat64(counter)
	counter.Inc()
	r.Equal(before+1, testutil.ToFloat64(counter))
}
