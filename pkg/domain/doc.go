// Package domain contains the core entities shared by the checkers: password
// and URL assessments, persisted check records and user activities. The types
// are free of infrastructure concerns so they can travel between the engines,
// storage and transport layers unchanged.
package domain
