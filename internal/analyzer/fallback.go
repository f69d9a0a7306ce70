package analyzer

import "time"

// OfflineStatus marks payloads produced without the external analyzer.
const OfflineStatus = "Analysis generated offline - analyzer unavailable"

// Fallback returns the deterministic offline analysis used when the analyzer
// cannot be reached. The submission never fails on its account.
func Fallback(clientName string, now time.Time) Result {
	return Result{
		Success: true,
		Data: map[string]any{
			"analysis": map[string]any{
				"overallMaturity": "Intermediate",
				"maturityScore":   65,
				"criticalAreas": []string{
					"Deployment automation",
					"Monitoring and observability",
					"Configuration management",
				},
				"recommendations": []string{
					"Build more robust CI/CD pipelines",
					"Improve monitoring coverage",
					"Establish Infrastructure as Code practices",
				},
				"strengths": []string{
					"Solid versioning practices",
					"Effective team collaboration",
				},
			},
			"client":      clientName,
			"generatedAt": now.Format(time.RFC3339),
			"status":      OfflineStatus,
		},
	}
}
