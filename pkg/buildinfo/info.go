package buildinfo

// Info is the short service description: service, version and timestamp.
func Info(service, version string) map[string]any {
	return map[string]any{
		"service":    service,
		"version":    version,
		KeyTimestamp: Timestamp(),
	}
}

// InfoFrom builds Info from project metadata, adding its identity fields.
// Absent keys are reported as Unknown.
func InfoFrom(service string, meta Metadata) map[string]any {
	return map[string]any{
		"service":     service,
		KeyVersion:    meta.Get(KeyVersion, Unknown),
		KeyGroupID:    meta.Get(KeyGroupID, Unknown),
		KeyArtifactID: meta.Get(KeyArtifactID, Unknown),
		KeyName:       meta.Get(KeyName, Unknown),
		KeyTimestamp:  Timestamp(),
	}
}

// FullInfo is Info with a description and contacts.
func FullInfo(service, version, description, developerEmail, ownerEmail string) map[string]any {
	return map[string]any{
		"service":             service,
		"version":             version,
		"description":         description,
		"developerContact":    developerEmail,
		"projectOwnerContact": ownerEmail,
		KeyTimestamp:          Timestamp(),
	}
}

// FullInfoFrom is InfoFrom with the descriptive fields. Absent descriptive
// keys are reported as empty strings.
func FullInfoFrom(service string, meta Metadata) map[string]any {
	info := InfoFrom(service, meta)
	info[KeyDescription] = meta.Get(KeyDescription, "")
	info[KeyDevelopers] = meta.Get(KeyDevelopers, "")
	info[KeyOwners] = meta.Get(KeyOwners, "")
	info[KeyOrganization] = meta.Get(KeyOrganization, "")
	return info
}
