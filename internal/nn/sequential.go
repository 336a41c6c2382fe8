package nn

import (
	"fmt"

	"github.com/born-ml/mlutil/internal/tensor"
)

// Sequential is a container module that chains modules.
// Each module's output becomes the next module's input.
//
// Example:
//
//	acts, _ := nn.GetActivation(nn.Names("prelu", "tanh"), nn.Width(64), nn.Units{})
//	block := nn.NewSequential(acts.All()...)
//	out, err := block.Forward(hidden)
type Sequential struct {
	modules []Module
}

// NewSequential creates a Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Forward applies all modules in order.
func (s *Sequential) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	output := input
	for i, module := range s.modules {
		var err error
		output, err = module.Forward(output)
		if err != nil {
			return nil, fmt.Errorf("sequential layer %d (%T): %w", i, module, err)
		}
	}
	return output, nil
}

// Parameters returns the parameters of all modules in order.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Add appends a module.
func (s *Sequential) Add(module Module) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// Module returns the module at index i.
func (s *Sequential) Module(i int) Module {
	return s.modules[i]
}
