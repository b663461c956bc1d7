// Package plan chains classification, command synthesis and script
// materialization for one project folder.
//
//	p := plan.New(script.NewWriter())
//	result, err := p.Plan(f, plan.Options{WriteScript: true})
//
// A Plan either fully succeeds or returns the first error unchanged.
// Nothing here executes the commands it produces.
package plan
