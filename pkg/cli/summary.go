/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/NVIDIA/la-clusterizer/pkg/clusterization"
)

// writeSummary prints one line per recommendation, or a success line for a
// clean audit.
func writeSummary(w io.Writer, r *clusterization.Report) {
	p := message.NewPrinter(language.English)

	if !r.HasRecommendations() {
		p.Fprintf(w, "%d subscription(s) audited, no cluster changes recommended\n", r.Summary.Subscriptions)
		return
	}

	for _, s := range r.Subscriptions {
		for _, rec := range s.Recommendations {
			p.Fprintf(w, "[%s] %s\n", s.Subscription.String(), describe(p, rec))
		}
	}
	p.Fprintf(w, "%d recommendation(s) across %d subscription(s)\n",
		r.Summary.Recommendations, r.Summary.Subscriptions)
}

func describe(p *message.Printer, rec clusterization.Recommendation) string {
	switch rec.Kind {
	case clusterization.KindCreateCluster:
		return p.Sprintf("create a dedicated cluster in %s: %.1f GB/day of unclustered usage",
			rec.Region, rec.ObservedVolume)
	case clusterization.KindUpgradeCluster:
		if rec.TargetCapacity == 0 {
			return p.Sprintf("cluster %s in %s ingests %.1f GB/day, above its %d GB/day tier which is the highest available",
				subject(rec), rec.Region, rec.ObservedVolume, int64(rec.Capacity))
		}
		return p.Sprintf("upgrade cluster %s in %s from %d to %d GB/day: %.1f GB/day observed",
			subject(rec), rec.Region, int64(rec.Capacity), int64(rec.TargetCapacity), rec.ObservedVolume)
	case clusterization.KindRemoveCluster:
		return p.Sprintf("remove cluster %s in %s: %.1f GB/day is below the minimum commitment",
			subject(rec), rec.Region, rec.ObservedVolume)
	case clusterization.KindReassignWorkspace:
		if rec.ClusterID == "" {
			return p.Sprintf("unlink workspace %s in %s from cluster %s, the region has no cluster",
				subject(rec), rec.Region, rec.CurrentClusterID)
		}
		if rec.CurrentClusterID != "" {
			return p.Sprintf("move workspace %s in %s from cluster %s to cluster %s",
				subject(rec), rec.Region, rec.CurrentClusterID, rec.ClusterID)
		}
		return p.Sprintf("link workspace %s in %s to cluster %s", subject(rec), rec.Region, rec.ClusterID)
	default:
		return p.Sprintf("%s %s in %s", rec.Kind, subject(rec), rec.Region)
	}
}

func subject(rec clusterization.Recommendation) string {
	if rec.SubjectName != "" {
		return rec.SubjectName
	}
	return rec.SubjectID
}
