package config

const (
	defaultDataDir         = "~/.local/share/bindery"
	defaultLogDir          = "~/.local/share/bindery/logs"
	defaultStagingDir      = "~/.local/share/bindery/staging"
	defaultResourcesSubdir = "Endless Learning"
	defaultSpreadsheet     = "Resources.xlsx"
	defaultContentVersion  = 1
	defaultChannelID       = "d0011aa6e9e84e0f955747443f3d7e2f"
	defaultChannelName     = "Mother Goose Club (Resources)"
	defaultChannelSourceID = "mother-goose-club-resources"
	defaultChannelDomain   = "mothergooseclub.com"
	defaultChannelLanguage = "en"
	defaultLicenseHolder   = "Mother Goose Club"
	defaultTwoDToken       = "MGCB.2D.ANIM"
	defaultThreeDToken     = "MGCB.3D.ANIM"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults. The category
// and substitution tables mirror the curator conventions of the Mother Goose
// Club resource archive; deployments for other archives override them in TOML.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:         defaultDataDir,
			LogDir:          defaultLogDir,
			StagingDir:      defaultStagingDir,
			ResourcesSubdir: defaultResourcesSubdir,
			Spreadsheet:     defaultSpreadsheet,
		},
		Archive: Archive{
			ContentVersion: defaultContentVersion,
		},
		Channel: Channel{
			ID:            defaultChannelID,
			Name:          defaultChannelName,
			SourceID:      defaultChannelSourceID,
			Domain:        defaultChannelDomain,
			Language:      defaultChannelLanguage,
			LicenseHolder: defaultLicenseHolder,
		},
		Categories: map[string][]string{
			"SH Videos":               {"SH.ANIM", "SH.LIVE"},
			"Mini Books":              {"Mini Book"},
			"Activity Books":          {"Website.Activity Book"},
			"Board Books":             {"Board Book"},
			"MGCL/MGC Anim Videos":    {"MGC.ANIM", "MGC.LIVE", "MGC.LIVE.EPISODE"},
			"PHL Videos":              {"PH.ANIM", "PH.LIVE"},
			"MGC ABC/Counting Videos": {"MGC.ANIM", "MGCB.2D.ANIM", "MGCB.3D.ANIM", "MGC.LIVE"},
		},
		Variants: Variants{
			TwoDToken:   defaultTwoDToken,
			ThreeDToken: defaultThreeDToken,
		},
		Resolver: Resolver{
			ExcludedExtensions: []string{".mov"},
			Substitutions: []Substitution{
				{Find: ",", Replace: ""},
				{Find: " Group", Replace: ".Group"},
				{Find: " Noa", Replace: ".Noa"},
				{Find: " Robert", Replace: ".Robert"},
				{Find: " Caralyn", Replace: ".Caralyn"},
			},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Ledger: Ledger{
			Enabled: true,
		},
	}
}
