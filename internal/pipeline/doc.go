// Package pipeline runs one cross per invocation: it derives both parents,
// applies the odd-length policy, checks that the parents line up locus by
// locus and hands the pair to genetics.Breed.
//
// Warnings go to the injected zap logger; errors are returned, never printed.
package pipeline
