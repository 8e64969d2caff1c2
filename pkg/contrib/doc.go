// Package contrib fetches a GitHub user's public contribution calendar.
//
// The data comes from a contributions API keyed by username
// (GET {base}/{username}) that answers with every year the user has been
// active plus one entry per day:
//
//	{
//	  "years": [{"year": "2024", "total": 812, "range": {"start": "2024-01-01", "end": "2024-12-31"}}],
//	  "contributions": [{"date": "2024-12-31", "count": 3, "color": "#40c463", "intensity": 2}]
//	}
//
// An empty years list is how the API says the profile does not exist.
//
// # Failure model
//
// [Client.Fetch] has exactly one failure class, [errors.ErrCodeFetchFailed].
// Transport errors, non-2xx responses and undecodable bodies are not
// distinguished. Nothing is retried or cached.
package contrib
