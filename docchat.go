// Package docchat turns a documentation website into an in-memory,
// searchable knowledge base and answers natural language questions about
// it by retrieving the most relevant passages before handing them to a
// text generation model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, memstore/).
package docchat
