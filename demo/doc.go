// Package demo provides the built-in components used to exercise the
// loader and validator end to end.
//
// hello-component is factory-shaped; hello-component-class is
// constructor-shaped with the full Init/Start/End surface. The broken
// variants reproduce the failure modes the validator exists to catch.
package demo
