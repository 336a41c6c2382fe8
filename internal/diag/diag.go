// Package diag logs tensors for quick inspection during training.
package diag

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/born-ml/mlutil/internal/tensor"
)

// Threshold is the element count above which printed tensors are summarized.
const Threshold = 20

// Item is one labelled tensor to log.
type Item struct {
	Label  string
	Tensor *tensor.Tensor
}

// Check logs an empty line followed by each item's label, shape and values.
// Tensors are detached and copied to the host first; the inputs are not modified.
// A nil log writes to the logrus standard logger.
func Check(log logrus.FieldLogger, items ...Item) error {
	if log == nil {
		log = logrus.StandardLogger()
	}

	log.Info("")
	for _, item := range items {
		if item.Tensor == nil {
			return fmt.Errorf("check %q: nil tensor", item.Label)
		}
		host, err := item.Tensor.Detach().CPU()
		if err != nil {
			return err
		}
		text, err := tensor.Format(host, Threshold)
		if err != nil {
			return err
		}
		log.Info(item.Label + "\t" + host.Shape().String() + "\n" + text + "\n")
	}
	return nil
}
