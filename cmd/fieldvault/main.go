// Package main 启动应用程序
package main

import "github.com/yeisme/fieldvault/pkg/cmd"

//	@title			FieldVault API
//	@version		1.0
//	@description	FieldVault 管理落地活动（field activation）记录与现场照片，并提供容量核算报告：照片桶用量扫描、数据库用量估算与剩余可写入量预测。

//	@license.name	MIT
//	@license.url	https://opensource.org/license/mit/

//	@contact.name	yeisme
//	@contact.email	yefun2004@gmail.com.

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
