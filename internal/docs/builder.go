// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package docs

import "slices"

// License names the license the API is published under.
type License struct {
	Name string
	URL  string
}

// Descriptor holds the document-level metadata of the API document.
type Descriptor struct {
	Title          string
	Description    string
	TermsOfService string
	License        License
	Servers        []string
	Version        string
}

// DocumentBuilder assembles a [Descriptor] fluently.
type DocumentBuilder struct {
	descriptor Descriptor
}

// NewDocumentBuilder returns an empty builder.
func NewDocumentBuilder() *DocumentBuilder {
	return &DocumentBuilder{}
}

// SetTitle sets the document title.
func (b *DocumentBuilder) SetTitle(title string) *DocumentBuilder {
	b.descriptor.Title = title
	return b
}

// SetDescription sets the document description.
func (b *DocumentBuilder) SetDescription(description string) *DocumentBuilder {
	b.descriptor.Description = description
	return b
}

// SetTermsOfService sets the terms of service text.
func (b *DocumentBuilder) SetTermsOfService(terms string) *DocumentBuilder {
	b.descriptor.TermsOfService = terms
	return b
}

// SetLicense sets the license name and URL.
func (b *DocumentBuilder) SetLicense(name, url string) *DocumentBuilder {
	b.descriptor.License = License{Name: name, URL: url}
	return b
}

// AddServer appends a server URL; servers keep insertion order.
func (b *DocumentBuilder) AddServer(url string) *DocumentBuilder {
	b.descriptor.Servers = append(b.descriptor.Servers, url)
	return b
}

// SetVersion sets the API version.
func (b *DocumentBuilder) SetVersion(version string) *DocumentBuilder {
	b.descriptor.Version = version
	return b
}

// Build returns the descriptor. The result shares no memory with the
// builder, so building twice yields equal, independent values.
func (b *DocumentBuilder) Build() Descriptor {
	d := b.descriptor
	d.Servers = slices.Clone(b.descriptor.Servers)
	return d
}
