package validator

import (
	"github.com/evanx/component-validator/component"
	"github.com/evanx/component-validator/errors"
	"github.com/evanx/component-validator/logger"
)

// Validate performs the structural lifecycle checks on a loaded
// instance. Checks run in a fixed order and the first violation wins:
// missing instance, empty name, missing start hook, missing end hook.
func Validate(inst *component.Instance) error {
	if inst == nil {
		return errors.Contract("component: empty")
	}
	if inst.Name == "" {
		return errors.Contract("component name: empty")
	}
	if inst.Start == nil {
		return errors.Contract("component: start")
	}
	if inst.End == nil {
		return errors.Contract("component: end")
	}

	logger.Debug("Component validated", map[string]interface{}{
		logger.FieldComponent: inst.Name,
		"start":               true,
		"end":                 true,
	})
	return nil
}
