// Package utils provides common utility functions used throughout the sqlalign
// codebase.
//
// # Identifier Utilities (identifier.go)
//
// SQL identifiers may be qualified (schema.table.column) and any part may be
// quoted with double quotes or backticks. Quoted parts are case-sensitive, so
// case conversion and alias completion must treat them as opaque:
//
//	utils.LastSegment("emp.dept_id")          // "dept_id"
//	utils.LastSegment(`emp."DeptId"`)         // `"DeptId"`
//	utils.MapUnquoted(`emp."DeptId"`, upper)  // `EMP."DeptId"`
//
// # Pointer Utilities (ptr.go)
//
//	comment := utils.Ptr(format.NewComment("-- c", loc))
package utils
