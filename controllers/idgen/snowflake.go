package idgen

import (
	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog/log"
)

var node *snowflake.Node

func Init() {
	var err error
	node, err = snowflake.NewNode(1)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to init Snowflake")
	}
}

func GenerateID() int64 {
	return node.Generate().Int64()
}
