package unions

// Discriminator is implemented by every variant of a struct-tagged family.
// The value is the exact wire string stored in the family's discriminator field.
type Discriminator interface {
	// DiscriminatorValue returns the tag registered for this variant,
	// e.g. "AmazonS3" or "AmazonARN".
	DiscriminatorValue() string
}

// DiscriminatorField is implemented by anything that knows which JSON field
// carries the discriminator of a family ("kind" for Purview, "type" elsewhere).
type DiscriminatorField interface {
	DiscriminatorFieldName() string
}
