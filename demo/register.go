package demo

import "github.com/evanx/component-validator/component"

// Register binds all built-in components into the registry.
func Register(reg *component.Registry) error {
	if err := reg.RegisterFactory(RefHello, NewHello); err != nil {
		return err
	}
	if err := reg.RegisterConstructor(RefHelloClass, NewHelloClass); err != nil {
		return err
	}
	if err := reg.RegisterConstructor(RefNoInitClass, newNoInitClass); err != nil {
		return err
	}
	if err := reg.RegisterFactory(RefNoEndFactory, newNoEnd); err != nil {
		return err
	}
	return reg.RegisterConstructor(RefBrokenClass, newBrokenClass)
}
