package extractvariable

import (
	"context"
	"fmt"
	"io"
)

// Demo quotes three shipments through both forms.
func Demo(ctx context.Context, w io.Writer) error {
	shipments := []Shipment{
		{WeightKG: 12, DistanceKM: 80},
		{WeightKG: 70, DistanceKM: 420, Fragile: true},
		{WeightKG: 260, DistanceKM: 1200},
	}
	for _, s := range shipments {
		fmt.Fprintf(w, "%3dkg over %4dkm fragile=%-5t before: %d after: %d\n",
			s.WeightKG, s.DistanceKM, s.Fragile, Before(s), After(s))
	}
	return nil
}
