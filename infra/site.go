// Package infra materializes a topology.Graph into AWS CDK constructs. The
// graph carries the design decisions; this package is the adapter between the
// descriptors and the provisioning engine, wired construct-for-node along the
// graph's dependency edges.
package infra

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfrontorigins"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53targets"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/montevideolabs-org/blog-webapp/pkg/naming"
	"github.com/montevideolabs-org/blog-webapp/topology"
)

// SiteProps configures a deployment. Domain is the only required field; the
// zone resolver defaults to a Route53 lookup against the ambient account.
type SiteProps struct {
	Domain    string
	StackName string
	Env       *awscdk.Environment
	Zones     topology.ZoneResolver
}

// Site is one materialized deployment. The certificate lives in its own stack
// because its region is pinned to topology.EdgeCertificateRegion while the
// rest of the resources deploy in the ambient region; CDK bridges the
// reference across regions.
type Site struct {
	Graph        *topology.Graph
	CertStack    awscdk.Stack
	SiteStack    awscdk.Stack
	Certificate  awscertificatemanager.Certificate
	Bucket       awss3.Bucket
	Distribution awscloudfront.Distribution
	Record       awsroute53.ARecord
}

// NewSite builds the topology graph for props.Domain and materializes it.
// Graph construction errors (zone not found, invariant violations) are
// returned before any resource-bearing construct exists.
func NewSite(app constructs.Construct, props *SiteProps) (*Site, error) {
	name := props.StackName
	if name == "" {
		name = naming.StackName(props.Domain)
	}

	certStack := awscdk.NewStack(app, jsii.String(name+"-cert"), &awscdk.StackProps{
		Env:                   certEnv(props.Env),
		CrossRegionReferences: jsii.Bool(true),
		Description:           jsii.String("Edge TLS certificate for " + props.Domain),
	})

	zones := props.Zones
	if zones == nil {
		zones = &LookupResolver{Scope: certStack}
	}

	graph, err := topology.Build(props.Domain, zones)
	if err != nil {
		return nil, err
	}

	cert := awscertificatemanager.NewCertificate(certStack, jsii.String("SiteCertificate"), &awscertificatemanager.CertificateProps{
		DomainName:              jsii.String(graph.Certificate.DomainName),
		SubjectAlternativeNames: optionalStrings(graph.Certificate.SubjectAlternativeNames),
		Validation:              awscertificatemanager.CertificateValidation_FromDns(importZone(certStack, graph.Zone)),
	})

	siteStack := awscdk.NewStack(app, jsii.String(name), &awscdk.StackProps{
		Env:                   props.Env,
		CrossRegionReferences: jsii.Bool(true),
		Description:           jsii.String("Static web application for " + props.Domain),
	})

	bucket := awss3.NewBucket(siteStack, jsii.String("OriginStore"), &awss3.BucketProps{
		BucketName:        jsii.String(graph.Origin.ID),
		Encryption:        bucketEncryption(graph.Origin),
		BlockPublicAccess: awss3.BlockPublicAccess_BLOCK_ALL(),
		EnforceSSL:        jsii.Bool(true),
	})

	dist := awscloudfront.NewDistribution(siteStack, jsii.String("EdgeDistribution"), &awscloudfront.DistributionProps{
		DefaultBehavior: &awscloudfront.BehaviorOptions{
			Origin:               awscloudfrontorigins.S3BucketOrigin_WithOriginAccessControl(bucket, nil),
			ViewerProtocolPolicy: viewerProtocolPolicy(graph.Distribution.ViewerPolicy),
		},
		DefaultRootObject: jsii.String(graph.Distribution.DefaultDocument),
		DomainNames:       optionalStrings(graph.Distribution.Aliases),
		Certificate:       cert,
	})

	record := awsroute53.NewARecord(siteStack, jsii.String(naming.ConstructID("AliasRecord", graph.Alias.RecordName)), &awsroute53.ARecordProps{
		Zone:       importZone(siteStack, graph.Zone),
		RecordName: jsii.String(graph.Alias.RecordName),
		Target:     awsroute53.RecordTarget_FromAlias(awsroute53targets.NewCloudFrontTarget(dist)),
	})

	return &Site{
		Graph:        graph,
		CertStack:    certStack,
		SiteStack:    siteStack,
		Certificate:  cert,
		Bucket:       bucket,
		Distribution: dist,
		Record:       record,
	}, nil
}

// certEnv pins the certificate stack to the edge region while keeping the
// ambient account. The region is taken from the topology constant, never from
// the caller's environment.
func certEnv(env *awscdk.Environment) *awscdk.Environment {
	pinned := awscdk.Environment{Region: jsii.String(topology.EdgeCertificateRegion)}
	if env != nil {
		pinned.Account = env.Account
	}
	return &pinned
}

// importZone rebuilds the weak zone reference inside a stack. The zone is
// never created here; only its attributes are imported.
func importZone(scope constructs.Construct, ref *topology.HostedZoneRef) awsroute53.IHostedZone {
	return awsroute53.PublicHostedZone_FromPublicHostedZoneAttributes(scope, jsii.String("HostedZone"),
		&awsroute53.PublicHostedZoneAttributes{
			ZoneName:     jsii.String(ref.DomainName),
			HostedZoneId: jsii.String(ref.ZoneID),
		})
}

func bucketEncryption(origin *topology.OriginStore) awss3.BucketEncryption {
	if origin.EncryptionAtRest {
		return awss3.BucketEncryption_S3_MANAGED
	}
	return awss3.BucketEncryption_UNENCRYPTED
}

func viewerProtocolPolicy(policy topology.ViewerPolicy) awscloudfront.ViewerProtocolPolicy {
	switch policy {
	case topology.ViewerPolicyHTTPSOnly:
		return awscloudfront.ViewerProtocolPolicy_HTTPS_ONLY
	default:
		return awscloudfront.ViewerProtocolPolicy_REDIRECT_TO_HTTPS
	}
}

func optionalStrings(values []string) *[]*string {
	if len(values) == 0 {
		return nil
	}
	return jsii.Strings(values...)
}
