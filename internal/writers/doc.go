// Package writers turns a genetics.Cross into serialized output.
//
// Design:
//   • Writers own all presentation knowledge (text report, JSON/JSONL, table).
//   • genetics stays domain-only; pipeline stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
