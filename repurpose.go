// Package repurpose turns a published article into ready-to-post content
// for other channels. It fetches an article URL, extracts its main text,
// asks a language model to rewrite it into LinkedIn posts, Twitter hooks,
// SEO meta fields and YouTube metadata, and normalizes the model's reply
// into a fixed schema.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, openai/, gjson/).
package repurpose
