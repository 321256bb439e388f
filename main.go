package main

import "github.com/jvokurka/tripbook/cmd"

func main() {
	cmd.Execute()
}
