package initializers

// Fill sets every value in ws to the next value from g.
func Fill(g RNG, ws []float64) {
	for i := 0; i < len(ws); i++ {
		ws[i] = g.Gen()
	}
}
