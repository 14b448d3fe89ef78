package datastore

import (
	"fmt"

	"github.com/openclinic/chartgeom/schema"
)

// PrintStoreStatus prints dataset store status information.
func PrintStoreStatus(status schema.StoreStatus) {
	fmt.Printf("Store Backend: %s\n", status.Backend)
	fmt.Printf("Location: %s\n", status.Location)
	fmt.Printf("Total Datasets: %d\n", status.DatasetCount)
	if status.SizeBytes >= 0 {
		fmt.Printf("Store Size: %d bytes\n", status.SizeBytes)
	} else {
		fmt.Println("Store Size: unavailable")
	}
}

// PrintDatasetList prints stored dataset summaries, one per line.
func PrintDatasetList(infos []schema.DatasetInfo) {
	if len(infos) == 0 {
		fmt.Println("No datasets stored.")
		return
	}
	fmt.Printf("%-24s %-10s %8s %10s  %s\n", "NAME", "KIND", "POINTS", "BYTES", "UPDATED")
	for _, info := range infos {
		fmt.Printf("%-24s %-10s %8d %10d  %s\n",
			info.Name, info.Kind, info.PointLen, info.SizeBytes,
			info.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("\n%d dataset(s)\n", len(infos))
}
