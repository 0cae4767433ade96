// Package genetics implements the Mendelian cross of two diploid genotypes.
//
// Stages:
//   • Genes splits a genotype into two-character loci.
//   • Alleles reduces each locus to its distinct allele symbols.
//   • Gametes enumerates every haploid combination, one symbol per locus.
//   • Offspring pairs two gamete sets row-major and Tally counts the results.
//
// The package is domain-only: no flags, no writers, no logging.
package genetics
