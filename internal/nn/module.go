// Package nn implements activation modules and resolves them by name.
//
// Activations are built from a closed registry so configuration strings
// ("relu", "prelu", ...) map to known constructors only:
//   - Module interface: base interface for every component
//   - Parameter: trainable tensor with a name
//   - Activations: ReLU, Sigmoid, Tanh, Softmax, PReLU and friends
//   - Registry and GetActivation: name to module resolution
//   - Sequential: container for stacking modules
package nn

import (
	"github.com/born-ml/mlutil/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Modules can be composed:
//
//	acts, _ := nn.GetActivation(nn.Names("relu", "tanh"))
//	model := nn.NewSequential(acts.All()...)
type Module interface {
	// Forward computes the output of the module for input.
	// Shape-preserving modules return a tensor of the input's shape.
	Forward(input *tensor.Tensor) (*tensor.Tensor, error)

	// Parameters returns the trainable parameters; nil for stateless modules.
	Parameters() []*Parameter
}
