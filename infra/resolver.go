package infra

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/montevideolabs-org/blog-webapp/pkg/naming"
	"github.com/montevideolabs-org/blog-webapp/topology"
)

// LookupResolver resolves hosted zones through the CDK Route53 context
// provider against the ambient account. A domain with no registered zone
// surfaces as topology.CodeZoneNotFound, matching the fail-fast contract of
// the graph builder.
//
// The first synth pass may see the provider's placeholder zone while the
// lookup result is written to cdk.context.json; the provider fails the synth
// itself when the zone genuinely does not exist.
type LookupResolver struct {
	Scope constructs.Construct
}

var _ topology.ZoneResolver = (*LookupResolver)(nil)

func (r *LookupResolver) ResolveZone(domain string) (*topology.HostedZoneRef, error) {
	zone := awsroute53.HostedZone_FromLookup(r.Scope, jsii.String(naming.ConstructID("ZoneLookup", domain)),
		&awsroute53.HostedZoneProviderProps{
			DomainName: jsii.String(domain),
		})
	if zone == nil || zone.HostedZoneId() == nil || *zone.HostedZoneId() == "" {
		return nil, topology.ZoneNotFoundError(domain)
	}

	zoneName := domain
	if zone.ZoneName() != nil && *zone.ZoneName() != "" {
		zoneName = *zone.ZoneName()
	}

	return &topology.HostedZoneRef{DomainName: zoneName, ZoneID: *zone.HostedZoneId()}, nil
}
