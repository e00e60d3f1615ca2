// Package services contains the business logic sitting between the
// HTTP controllers and the repositories.
package services
