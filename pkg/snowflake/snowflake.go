package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 用户、回收记录、兑换码记录共用的主键
func GenID() int64 {
	return node.Generate().Int64()
}
