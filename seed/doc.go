// Package seed implements the Seed Producer (spec §4.3): a fast greedy
// construction that primes the incumbent lower bound before any exact
// solver starts branching. A tighter incumbent means more branches get
// pruned at the size-bound check (clique skeleton step 1), so a good seed
// is pure speed — correctness of every exact variant does not depend on it
// (testable property 6, seed safety).
package seed
