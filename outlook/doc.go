// Package outlook computes the forward-looking opportunity measures:
// the Complexity Outlook Index (COI, per place) and the Complexity
// Outlook Gain (COG, per place–activity pair).
//
// 🚀 What do they measure?
//
//	COI weighs the complexity of what a place is MISSING by how close the
//	place already is to it:
//
//	  coi(c) = Σ_p density(c,p) · (1 − M[c][p]) · pci(p)
//
//	COG asks: if place c acquired activity p, how much complexity-weighted
//	opportunity would open up through p's neighborhood?
//
//	  cog(c,p) = Σ_{p'} (1 − M[c][p']) · pci(p') · φ(p,p') / Σ_{p'} φ(p,p')
//
//	computed as one complement-weighted matrix product against φ,
//	normalized by each activity's total proximity mass.
//
// The density term is computed internally from (M, φ); callers supply only
// the presence matrix, the proximity matrix and the PCI vector (aligned to
// M's activity ordering; any disagreement is flows.ErrIndexMismatch).
//
// Output: cross-joined (place, activity, coi, cog) rows where coi is
// constant per place, sorted by (place, activity).
package outlook
