// Package logging builds the zap loggers used across egeria-in-go.
//
// Components take a *zap.Logger and name it after themselves, e.g.
// lggr.Named("harvest"). Tests use Test or TestObserved rather than New.
package logging
