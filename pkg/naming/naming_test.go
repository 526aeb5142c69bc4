package naming

import "testing"

func TestOriginBucketName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.org", "example-org-site"},
		{"blog.example.org", "blog-example-org-site"},
		{"Example.ORG", "example-org-site"},
		{"  example.org  ", "example-org-site"},
		{"my_site.example.org", "my-site-example-org-site"},
		{"", "site"},
	}

	for _, tt := range tests {
		if got := OriginBucketName(tt.in); got != tt.want {
			t.Errorf("OriginBucketName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStackName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.org", "example-org-webapp"},
		{"blog.example.org", "blog-example-org-webapp"},
		{"", "webapp"},
	}

	for _, tt := range tests {
		if got := StackName(tt.in); got != tt.want {
			t.Errorf("StackName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConstructID(t *testing.T) {
	tests := []struct {
		prefix string
		fqdn   string
		want   string
	}{
		{"AliasRecord", "example.org", "AliasRecord-example-org"},
		{"AliasRecord", "blog.example.org", "AliasRecord-blog-example-org"},
		{"Zone", "", "Zone"},
	}

	for _, tt := range tests {
		if got := ConstructID(tt.prefix, tt.fqdn); got != tt.want {
			t.Errorf("ConstructID(%q, %q) = %q, want %q", tt.prefix, tt.fqdn, got, tt.want)
		}
	}
}

func TestNamesAreDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if OriginBucketName("example.org") != "example-org-site" {
			t.Fatal("OriginBucketName is not deterministic")
		}
	}
}
