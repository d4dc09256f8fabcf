// Package widgets provides the leaf and wrapper render objects used as
// ripple children: a padded text Label and a fixed-size SizedBox.
//
// Each type follows the same shape: a plain configuration struct whose
// CreateRenderObject returns the render box, and an Update method on the
// render box that applies a changed configuration.
package widgets
