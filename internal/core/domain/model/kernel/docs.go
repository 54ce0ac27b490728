// Package kernel holds the value objects shared by the order, purchase and activity
// aggregates: identifiers, money in minor units, line items and actors.
//
// Values are immutable and must be built through their constructors; a zero value
// fails Validate.
package kernel
