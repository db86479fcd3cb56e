// Package domain defines core data models, error kinds and interfaces shared
// across the module. It contains plain types and contracts only.
package domain
