// Package gradient generates decorative CSS gradients for recipe cards.
// Purely presentational, the values carry no domain meaning.
package gradient

import (
	"fmt"
	"math/rand/v2"
)

// New returns a random two-stop linear CSS gradient.
func New() string {
	angle := rand.IntN(360)
	h1 := rand.IntN(360)
	h2 := (h1 + 60 + rand.IntN(120)) % 360
	return fmt.Sprintf("linear-gradient(%ddeg, hsl(%d, 70%%, 60%%), hsl(%d, 70%%, 45%%))", angle, h1, h2)
}
