// Package topology assembles the declarative resource graph that serves a
// single-page web application over a custom domain: an encrypted object-storage
// origin, an edge distribution with TLS, a DNS-validated certificate, and an
// alias record binding the domain to the distribution.
//
// The package is pure data assembly. Descriptors declare intent; an external
// provisioning engine materializes them. Nothing here performs I/O, and a
// built Graph is never mutated after Build returns.
package topology

// EdgeCertificateRegion is the region the edge layer requires certificates to
// be issued in. CloudFront only accepts ACM certificates from us-east-1, so
// this is a hard constraint independent of where the rest of the stack
// deploys, not a default.
const EdgeCertificateRegion = "us-east-1"

// DefaultDocument is served for root-path requests against the distribution.
const DefaultDocument = "index.html"

// ViewerPolicy controls how the edge layer treats plaintext viewers. There is
// deliberately no allow-all value: plaintext is never served.
type ViewerPolicy string

const (
	ViewerPolicyRedirectToHTTPS ViewerPolicy = "redirect-to-https"
	ViewerPolicyHTTPSOnly       ViewerPolicy = "https-only"
)

// OriginStore declares the durable object store the edge layer reads from.
// Encryption at rest is always on, and no public-access policy is ever
// attached: with a custom domain in front, all reads go through the edge.
type OriginStore struct {
	ID               string
	EncryptionAtRest bool
}

// NewOriginStore returns an origin-store descriptor. There are no failure
// modes at this level; naming collisions surface at materialization.
func NewOriginStore(id string) *OriginStore {
	return &OriginStore{ID: id, EncryptionAtRest: true}
}

// HostedZoneRef identifies a pre-existing DNS zone authoritative for the
// deployment domain. It is a weak reference: the zone is looked up, never
// created, mutated, or destroyed by this system.
type HostedZoneRef struct {
	DomainName string
	ZoneID     string
}

// Certificate declares intent to issue a TLS certificate validated through
// DNS records placed in ValidationZone. Issuance and renewal are asynchronous
// and belong to the provisioning engine; validation timeouts or failures
// there are fatal to the deployment.
type Certificate struct {
	DomainName              string
	SubjectAlternativeNames []string
	ValidationZone          *HostedZoneRef
	// Region is always EdgeCertificateRegion. It is set by the constructor
	// and never inherited from ambient deployment configuration.
	Region string
}

// NewCertificate returns a certificate descriptor pinned to
// EdgeCertificateRegion. The pin is not configurable: a certificate issued
// anywhere else silently fails to attach to the edge distribution at
// materialization time.
func NewCertificate(domain string, zone *HostedZoneRef, sans ...string) *Certificate {
	return &Certificate{
		DomainName:              domain,
		SubjectAlternativeNames: append([]string(nil), sans...),
		ValidationZone:          zone,
		Region:                  EdgeCertificateRegion,
	}
}

// Covers reports whether the certificate's domain-name set includes domain.
func (c *Certificate) Covers(domain string) bool {
	if c == nil {
		return false
	}
	if c.DomainName == domain {
		return true
	}
	for _, san := range c.SubjectAlternativeNames {
		if san == domain {
			return true
		}
	}
	return false
}

// EdgeDistribution is the densest node in the graph: it binds the origin, the
// viewer protocol policy, the default document, the custom domain aliases,
// and the certificate that makes those aliases servable.
type EdgeDistribution struct {
	Origin          *OriginStore
	ViewerPolicy    ViewerPolicy
	Aliases         []string
	DefaultDocument string
	Certificate     *Certificate
}

// NewEdgeDistribution builds the distribution descriptor. If aliases is
// non-empty, cert must be non-nil and cover every alias; the edge layer
// refuses custom domains without a bound certificate, and discovering that
// after a slow real-world deployment attempt is unacceptably expensive, so
// the check happens here rather than at materialization.
func NewEdgeDistribution(origin *OriginStore, aliases []string, cert *Certificate) (*EdgeDistribution, error) {
	for _, alias := range aliases {
		if !cert.Covers(alias) {
			return nil, errMissingCertificateForAlias(alias)
		}
	}
	return &EdgeDistribution{
		Origin:          origin,
		ViewerPolicy:    ViewerPolicyRedirectToHTTPS,
		Aliases:         append([]string(nil), aliases...),
		DefaultDocument: DefaultDocument,
		Certificate:     cert,
	}, nil
}

// AliasRecord binds a record name inside the resolved zone to the edge
// distribution as an alias target. The DNS provider resolves the target by
// identity, not by fixed IP.
type AliasRecord struct {
	Zone       *HostedZoneRef
	RecordName string
	Target     *EdgeDistribution
}

// NewAliasRecord builds the alias-record descriptor. The record name must be
// one of the target distribution's declared aliases; a mismatch is rejected
// here, before the provisioning engine ever sees the graph.
func NewAliasRecord(zone *HostedZoneRef, name string, target *EdgeDistribution) (*AliasRecord, error) {
	for _, alias := range target.Aliases {
		if alias == name {
			return &AliasRecord{Zone: zone, RecordName: name, Target: target}, nil
		}
	}
	return nil, errRecordNameMismatch(name, target.Aliases)
}
