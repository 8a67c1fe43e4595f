package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/hackfs/hackfs"
	"github.com/hackfs/hackfs/config"
	"github.com/hackfs/hackfs/filesystem"
	"github.com/hackfs/hackfs/internal/util"
	"github.com/hackfs/hackfs/requests"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		nodesDef   string
		verbose    int
		long       bool
	)
	flag.StringVar(&configPath, "config", "", "Path to config file (yaml or json)")
	flag.StringVar(&configPath, "c", "", "--config (shorthand)")
	flag.StringVar(&nodesDef, "nodes", "", "Path to nodes def file")
	flag.StringVar(&nodesDef, "n", "", "--nodes (shorthand)")
	flag.BoolVar(&long, "long", false, "Print the annotated listing instead of full paths")
	flag.BoolVar(&long, "l", false, "--long (shorthand)")
	flag.IntVar(&verbose, "verbose", 3, "Log verbosity level between 1 (error) and 5 (trace). Default is 3 (info).")
	flag.IntVar(&verbose, "v", 3, "--verbose (shorthand)")
	flag.Parse()

	// Initialize logger
	if verbose < config.ErrorVerbose {
		verbose = config.ErrorVerbose
	}
	if verbose > config.TraceVerbose {
		verbose = config.TraceVerbose
	}
	cfg := config.NewConfig(&config.ConfigOverride{LogLvl: &verbose})
	if configPath != "" {
		override, err := config.LoadConfigOverrideFile(configPath)
		if err != nil {
			util.InitializeLogger(cfg.LogLvl)
			logger := util.GetLogger("main")
			logger.Fatal().Err(err).Str("config", configPath).Msg("Failed to load config file")
		}
		cfg.Merge(override)
	}
	util.InitializeLogger(cfg.LogLvl)
	logger := util.GetLogger("main")

	if nodesDef == "" {
		nodesDef = cfg.SeedPath
	}

	session := hackfs.New(cfg)
	if nodesDef != "" {
		if err := seed(session.FS(), nodesDef); err != nil {
			logger.Fatal().Err(err).Str("nodes", nodesDef).Msg("Failed to seed filesystem")
		}
	} else {
		logger.Warn().Msg("No nodes def file provided; tree is empty")
	}

	// Print the requested traversal of the whole tree, optionally filtered
	// by a search term passed as the argument.
	term := flag.Arg(0)
	switch {
	case long:
		fmt.Print(session.ListLong())
	case term != "":
		fmt.Print(session.FindContaining(term))
	default:
		fmt.Print(session.Find())
	}
}

// seed loads a JSON array of node definitions and applies them to the tree,
// directories first so explicit directory metadata wins over implicit
// ancestors.
func seed(fs *filesystem.FileSystem, nodesDef string) error {
	logger := util.GetLogger("seed")

	defData, err := os.ReadFile(nodesDef)
	if err != nil {
		return err
	}
	var rawNodes []json.RawMessage
	if err := json.Unmarshal(defData, &rawNodes); err != nil {
		return err
	}

	var fileRequests []*hackfs.FileCreateRequest
	var dirRequests []*hackfs.DirCreateRequest

	for _, rawNode := range rawNodes {
		nodeType, err := requests.GetNodeType(rawNode)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to get node type")
			continue
		}

		switch nodeType {
		case hackfs.FileNodeType:
			fileReq, err := requests.UnmarshalFileRequest(rawNode)
			if err != nil {
				logger.Error().Err(err).Msg("Failed to unmarshal file request")
				continue
			}
			fileRequests = append(fileRequests, fileReq)

		case hackfs.DirNodeType:
			dirReq, err := requests.UnmarshalDirRequest(rawNode)
			if err != nil {
				logger.Error().Err(err).Msg("Failed to unmarshal directory request")
				continue
			}
			dirRequests = append(dirRequests, dirReq)

		default:
			logger.Warn().Str("type", string(nodeType)).Msg("Unknown node type")
		}
	}

	dirAddCnt := 0
	for _, req := range dirRequests {
		if _, err := fs.AddDirNode(req.Path); err != nil {
			logger.Debug().Str("path", req.Path).Err(err).Msg("Failed to add directory request")
			continue
		}
		dirAddCnt++
	}
	fileAddCnt := 0
	for _, req := range fileRequests {
		if _, err := fs.AddFileNode(req.Path, req.Content); err != nil {
			logger.Debug().Str("path", req.Path).Err(err).Msg("Failed to add file request")
			continue
		}
		fileAddCnt++
	}
	logger.Info().Int("directories", dirAddCnt).Int("files", fileAddCnt).Msg("Added new nodes to filesystem")
	return nil
}
