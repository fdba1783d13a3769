// Package dao configures one store.Accessor per Northwind table.
//
// The accessors only differ in table name, column list and key type; the
// statement text, parameter order and row mapping all come from
// [store.Accessor]. Binding order for every entity is the declared column
// order below, with the key bound first on inserts that supply it and last
// on updates.
package dao
