package topology

import (
	"github.com/montevideolabs-org/blog-webapp/pkg/naming"
)

// Node identifies a descriptor within the graph.
type Node string

const (
	NodeOriginStore      Node = "origin-store"
	NodeHostedZone       Node = "hosted-zone"
	NodeCertificate      Node = "certificate"
	NodeEdgeDistribution Node = "edge-distribution"
	NodeAliasRecord      Node = "alias-record"
)

// Edge declares that From must be materialized after To.
type Edge struct {
	From Node
	To   Node
}

// Graph is the finished five-node descriptor graph for one deployment. It is
// write-once: Build assembles it in a single pass and callers hand it to the
// provisioning engine read-only.
type Graph struct {
	Domain       string
	Origin       *OriginStore
	Zone         *HostedZoneRef
	Certificate  *Certificate
	Distribution *EdgeDistribution
	Alias        *AliasRecord
	Edges        []Edge
}

// ZoneResolver resolves the identity of a pre-existing DNS zone authoritative
// for a domain. Implementations return an error with code CodeZoneNotFound
// when no matching zone is registered; that is a missing precondition, not a
// retryable condition. Any other resolver error propagates unchanged.
type ZoneResolver interface {
	ResolveZone(domain string) (*HostedZoneRef, error)
}

// ZoneMap is a ZoneResolver over fixed domain → zone-ID attributes, for
// offline synthesis and tests.
type ZoneMap map[string]string

func (m ZoneMap) ResolveZone(domain string) (*HostedZoneRef, error) {
	id, ok := m[domain]
	if !ok {
		return nil, ZoneNotFoundError(domain)
	}
	return &HostedZoneRef{DomainName: domain, ZoneID: id}, nil
}

// Build assembles the deployment graph for domain. It is a pure function of
// its inputs: the same domain against the same resolver yields structurally
// identical graphs.
//
// The zone is resolved first so a missing delegation fails before any
// descriptor exists, then descriptors are built leaf-first: origin store and
// zone, certificate, edge distribution, alias record. Construction is
// all-or-nothing; no partial graph is ever returned.
func Build(domain string, zones ZoneResolver) (*Graph, error) {
	zone, err := zones.ResolveZone(domain)
	if err != nil {
		return nil, err
	}

	origin := NewOriginStore(naming.OriginBucketName(domain))
	cert := NewCertificate(domain, zone)

	dist, err := NewEdgeDistribution(origin, []string{domain}, cert)
	if err != nil {
		return nil, err
	}

	alias, err := NewAliasRecord(zone, domain, dist)
	if err != nil {
		return nil, err
	}

	return &Graph{
		Domain:       domain,
		Origin:       origin,
		Zone:         zone,
		Certificate:  cert,
		Distribution: dist,
		Alias:        alias,
		Edges:        dependencyEdges(),
	}, nil
}

// dependencyEdges is the fixed DAG: origin store and hosted zone are leaves,
// the certificate validates through the zone, the distribution needs both its
// origin and its certificate, and the alias record needs the zone and the
// distribution it points at.
func dependencyEdges() []Edge {
	return []Edge{
		{From: NodeCertificate, To: NodeHostedZone},
		{From: NodeEdgeDistribution, To: NodeOriginStore},
		{From: NodeEdgeDistribution, To: NodeCertificate},
		{From: NodeAliasRecord, To: NodeHostedZone},
		{From: NodeAliasRecord, To: NodeEdgeDistribution},
	}
}
