package domain

// Greet returns the greeting for name.
func Greet(name string) string {
	return "Hello, " + name + "!"
}
