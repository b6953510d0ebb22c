// Package aivis measures how visible a business is to LLM-based assistants.
// It fetches a website, derives a structured business profile, generates the
// search questions a prospective customer might ask, probes an LLM with each
// question cold (optionally letting it call web/news search tools), scores
// the answers, and aggregates everything into a report.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., openai/, goquery/, tavily/).
package aivis
