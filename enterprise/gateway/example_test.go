package gateway_test

import (
	"context"
	"os"

	"go.llib.dev/exemplar/enterprise/gateway"
)

func ExampleDemo() {
	_ = gateway.Demo(context.Background(), os.Stdout)

	// Output:
	// charged 49.00 EUR for "ord-7001": pay-0001 succeeded
	// charging card 4000000000000002: [card was declined] card ending in 0002 was declined
	// charging card 4000000000009995: [card has insufficient funds] card ending in 9995 has insufficient funds
	// refunded pay-0001 for "ord-7001"
	// refunding a made up ref: [charge is not known to the provider] no charge with reference "pay-9999"
}
