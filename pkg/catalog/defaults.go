package catalog

// Default returns the built-in catalog. In a real deployment this would be
// fetched from a pricing service; the console ships with a static snapshot.
func Default() *Catalog {
	return &Catalog{
		Locations: []Location{
			{ID: "ewr", City: "New Jersey", Region: RegionNorthAmerica, Flag: "us"},
			{ID: "ord", City: "Chicago", Region: RegionNorthAmerica, Flag: "us"},
			{ID: "dfw", City: "Dallas", Region: RegionNorthAmerica, Flag: "us"},
			{ID: "sea", City: "Seattle", Region: RegionNorthAmerica, Flag: "us"},
			{ID: "lax", City: "Los Angeles", Region: RegionNorthAmerica, Flag: "us"},
			{ID: "yto", City: "Toronto", Region: RegionNorthAmerica, Flag: "ca"},
			{ID: "ams", City: "Amsterdam", Region: RegionEurope, Flag: "nl"},
			{ID: "lhr", City: "London", Region: RegionEurope, Flag: "gb"},
			{ID: "fra", City: "Frankfurt", Region: RegionEurope, Flag: "de"},
			{ID: "cdg", City: "Paris", Region: RegionEurope, Flag: "fr"},
			{ID: "nrt", City: "Tokyo", Region: RegionAsia, Flag: "jp"},
			{ID: "icn", City: "Seoul", Region: RegionAsia, Flag: "kr"},
			{ID: "sgp", City: "Singapore", Region: RegionAsia, Flag: "sg"},
			{ID: "syd", City: "Sydney", Region: RegionAustralia, Flag: "au"},
			{ID: "sao", City: "São Paulo", Region: RegionSouthAmerica, Flag: "br"},
		},
		Plans: []Plan{
			{ID: "vc2-1c-1gb", Category: CategoryCloudCompute, VCPUs: 1, RAM: "1 GB", Disk: "25 GB SSD", Bandwidth: "1 TB", MonthlyPrice: 5},
			{ID: "vc2-1c-2gb", Category: CategoryCloudCompute, VCPUs: 1, RAM: "2 GB", Disk: "55 GB SSD", Bandwidth: "2 TB", MonthlyPrice: 10},
			{ID: "vc2-2c-4gb", Category: CategoryCloudCompute, VCPUs: 2, RAM: "4 GB", Disk: "80 GB SSD", Bandwidth: "3 TB", MonthlyPrice: 20},
			{ID: "vc2-4c-8gb", Category: CategoryCloudCompute, VCPUs: 4, RAM: "8 GB", Disk: "160 GB SSD", Bandwidth: "4 TB", MonthlyPrice: 40},
			{ID: "voc-c-1c-2gb-50s", Category: CategoryOptimizedCloud, VCPUs: 1, RAM: "2 GB", Disk: "50 GB NVMe", Bandwidth: "2 TB", MonthlyPrice: 10},
			{ID: "voc-c-2c-4gb-75s", Category: CategoryOptimizedCloud, VCPUs: 2, RAM: "4 GB", Disk: "75 GB NVMe", Bandwidth: "3 TB", MonthlyPrice: 30},
			{ID: "voc-c-4c-8gb-150s", Category: CategoryOptimizedCloud, VCPUs: 4, RAM: "8 GB", Disk: "150 GB NVMe", Bandwidth: "5 TB", MonthlyPrice: 60},
			{ID: "vhf-1c-1gb", Category: CategoryHighFrequency, VCPUs: 1, RAM: "1 GB", Disk: "32 GB NVMe", Bandwidth: "1 TB", MonthlyPrice: 6},
			{ID: "vhf-2c-4gb", Category: CategoryHighFrequency, VCPUs: 2, RAM: "4 GB", Disk: "128 GB NVMe", Bandwidth: "3 TB", MonthlyPrice: 24},
			{ID: "vbm-4c-32gb", Category: CategoryBareMetal, VCPUs: 4, RAM: "32 GB", Disk: "2x 480 GB SSD", Bandwidth: "5 TB", MonthlyPrice: 120},
			{ID: "vso-1c-1gb-150s", Category: CategoryStorageOptimized, VCPUs: 1, RAM: "1 GB", Disk: "150 GB NVMe", Bandwidth: "1 TB", MonthlyPrice: 10},
		},
		Images: []Image{
			{ID: "ubuntu-24-04", Name: "Ubuntu", Type: ImageOS, Versions: []string{"24.04 LTS", "22.04 LTS", "20.04 LTS"}},
			{ID: "debian-12", Name: "Debian", Type: ImageOS, Versions: []string{"12", "11"}},
			{ID: "rocky-9", Name: "Rocky Linux", Type: ImageOS, Versions: []string{"9", "8"}},
			{ID: "fedora-40", Name: "Fedora", Type: ImageOS, Versions: []string{"40", "39"}},
			{ID: "windows-2022", Name: "Windows Server", Type: ImageOS, Versions: []string{"2022", "2019"}, ExtraCost: 16},
			{ID: "docker-ubuntu", Name: "Docker on Ubuntu", Type: ImageApp, Versions: []string{"latest"}},
			{ID: "wordpress", Name: "WordPress", Type: ImageApp, Versions: []string{"6.5"}},
			{ID: "plesk", Name: "Plesk", Type: ImageApp, Versions: []string{"Obsidian"}, ExtraCost: 12},
			{ID: "cpanel", Name: "cPanel", Type: ImageApp, Versions: []string{"110"}, ExtraCost: 18},
			{ID: "netboot-xyz", Name: "netboot.xyz", Type: ImageISONetwork, Versions: []string{"2.0"}},
			{ID: "systemrescue", Name: "SystemRescue", Type: ImageISOLibrary, Versions: []string{"11.01"}},
		},
		Addons: []Addon{
			{ID: "backups", Label: "Automatic Backups", Mode: AddonPercent, Rate: 0.20},
			{ID: "ddos", Label: "DDoS Protection", Mode: AddonFlat, Flat: 10},
			{ID: "ssl", Label: "Managed SSL", Mode: AddonFlat, Flat: 10},
			{ID: "ipv6", Label: "IPv6 Networking", Mode: AddonFlat, Flat: 0},
		},
	}
}
