/*
Package alias defines the core domain entity for an alias.
*/
package alias

/*
Alias binds a short name to a command template. The template may contain
positional "{}" placeholders that are filled at execution time.
*/
type Alias struct {
	Name    string `yaml:"alias"`
	Command string `yaml:"command"`
}
