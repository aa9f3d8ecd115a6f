package utils

// shortHashLen is how many leading characters of a credential hash are kept
// in log lines.
const shortHashLen = 8

// ShortHash shortens a credential-derived blob name for logging.
//
// Blob names are SHA-512 hashes of the user's credentials, so full names are
// never written to logs. Names of at most shortHashLen bytes are returned
// unchanged; longer ones are cut and suffixed with "…".
//
// Example usage:
//
//	log.Info().Str("name", utils.ShortHash(name)).Msg("blob written")
func ShortHash(name string) string {
	if len(name) <= shortHashLen {
		return name
	}
	return name[:shortHashLen] + "…"
}
