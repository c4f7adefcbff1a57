package main

import "github.com/DataMends/attrify/cmd"

func main() {
	cmd.Execute()
}
