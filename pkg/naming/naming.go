// Package naming derives deterministic resource and construct names from the
// deployment domain. Determinism matters: the graph builder promises that two
// builds from the same domain are structurally identical, so nothing here may
// consult clocks, randomness, or ambient state.
package naming

import (
	"regexp"
	"strings"
)

var (
	nonAlnum  = regexp.MustCompile(`[^a-z0-9-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

func sanitizePart(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return ""
	}
	value = strings.ReplaceAll(value, ".", "-")
	value = strings.ReplaceAll(value, "_", "-")
	value = nonAlnum.ReplaceAllString(value, "-")
	value = multiDash.ReplaceAllString(value, "-")
	value = strings.Trim(value, "-")
	return value
}

// OriginBucketName returns the bucket name backing the site origin:
// <domain with dots flattened>-site, e.g. "example-org-site".
func OriginBucketName(domain string) string {
	base := sanitizePart(domain)
	if base == "" {
		return "site"
	}
	return base + "-site"
}

// StackName returns the CloudFormation stack name for a domain, e.g.
// "example-org-webapp".
func StackName(domain string) string {
	base := sanitizePart(domain)
	if base == "" {
		return "webapp"
	}
	return base + "-webapp"
}

// ConstructID converts an FQDN into a CloudFormation-safe construct ID with
// the given prefix, e.g. ConstructID("AliasRecord", "blog.example.org") ->
// "AliasRecord-blog-example-org". Dots are invalid in logical IDs.
func ConstructID(prefix, fqdn string) string {
	clean := sanitizePart(fqdn)
	if clean == "" {
		return prefix
	}
	return prefix + "-" + clean
}
