// Package team parses plain-text team exports and resolves their free-text
// tokens against a reference [Catalog].
//
// An export is a sequence of blocks separated by blank lines, one block per
// creature. The first line of a block is the header:
//
//	<Species>[-<Form>] [(M)|(F)] [@ <Item>]
//
// and every following line is a field line recognized by its shape:
//
//	Level: 50
//	Adamant Nature
//	Ability: Imposter
//	EVs: 252 Atk / 252 Spe / 4 HP
//	IVs: 0 Atk
//	- Transform
//
// Lines that match none of these shapes are ignored.
//
// # Resolution
//
// Named tokens are normalized by the parser (lowercased, with spaces and,
// for moves, hyphens removed) and looked up through [Catalog.Resolve].
// A miss is reported as the boolean false result, never as an error, so the
// parser alone decides what a miss means.
//
// # Failure handling
//
// Failures are raised per physical line as [*Error] values tagged with a
// [FailureKind]. An unknown species ([UnresolvedSpecies]) always aborts the
// parse. Unresolved tokens and malformed lines are handed to the configured
// [Policy]: [Strict] aborts the whole parse with no team, [Lenient] logs the
// failure and resumes at the next line, and [Collect] records it.
//
// Entries are appended to the team as soon as their header resolves, so a
// lenient parse keeps entries whose later lines failed.
//
// # Output
//
// A [Team] can be written back in the export grammar with [Team.Format], or
// as JSON and YAML with [Team.FormatJSON] and [Team.FormatYAML]. Entries
// can be filtered with an expression compiled by [Compile].
package team
