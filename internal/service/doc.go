// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Services receive dependencies through constructor injection and apply
// transactional boundaries when an operation spans multiple repositories,
// such as creating a place together with its owner's membership row. They
// translate store-level errors into application-level errors that the API
// layer maps to HTTP responses.
package service
