// Package twmerge merges utility-first CSS class lists (Tailwind style) so
// that a later class overrides an earlier one of the same group.
//
//	twmerge.Merge("px-2 py-1 bg-red-500 hover:bg-red-600", "p-3 bg-[#B91C1C]")
//	// "px-2 py-1 bg-[#B91C1C] p-3"
//
// Every token is classified into a group by an ordered table of recognizers
// (see DefaultGroups). For each group only the last token survives, at the
// position where the group was first seen. Tokens no recognizer accepts get
// a group of their own, `custom:<token>`, so unknown classes are only
// collapsed with identical copies of themselves.
//
// A single variant prefix (sm:, md:, lg:, xl:, 2xl:, hover:, focus:, active:,
// disabled:, dark:) is allowed in front of any utility and does not change its
// group. The table can be extended with a yaml Config, see GenerateSample.
package twmerge
