// SPDX-License-Identifier: MIT

// Package proteomics is the home of the modification-combination catalogue
// used by sequence searches that allow dynamic post-translational
// modifications.
//
// 🚀 What is in here?
//
//	A search that allows at most K modifications out of M types walks every
//	residue of every candidate sequence and must know, at each step, which
//	multiset of modifications it carries. The catalogue answers that with a
//	dense index per multiset and an O(1) transition table.
//
// Under the hood, everything is organized under these packages:
//
//	modcomb/      — the catalogue: generator, canonical encoder, transition table, BFS walk
//	modification/ — the Modification record (mass delta, residue, location) and Set
//	catalogue/    — builds one catalogue per configured profile, concurrently
//	config/       — YAML configuration with MODCAT_* environment overrides
//	logger/       — slog setup
//	metrics/      — Prometheus collectors and textfile export
//	cmd/modcat/   — command-line front end
//	examples/     — a residue walk that enumerates modified peptide forms
//
// Quick example:
//
//	{} ──Ox──▶ {Ox} ──Ac──▶ {Ox, Ac}   (full at K=2)
//
//	go run ./cmd/modcat -config configs/modcat.yaml -dump
package proteomics
