package gitlab

// Project is one discoverable repository as the listing API returns
// it. The ID doubles as the keyset pagination cursor; ids are unique
// and globally increasing. Immutable once decoded.
type Project struct {
	ID                uint64 `json:"id"`
	SSHURLToRepo      string `json:"ssh_url_to_repo"`
	HTTPURLToRepo     string `json:"http_url_to_repo"`
	PathWithNamespace string `json:"path_with_namespace"`
}
